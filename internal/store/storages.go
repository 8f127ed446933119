package store

import (
	"context"
	"fmt"

	"github.com/medidesk/clinic-backend/internal/config"
	"github.com/medidesk/clinic-backend/internal/logger"
)

// Storages aggregates all repositories backed by the shared database
// connection. It owns the connection lifecycle: NewStorages opens and
// migrates, Close releases the pool at shutdown.
type Storages struct {
	PatientRepository PatientRepository
	RecordsRepository RecordsRepository

	db *DB
}

// NewStorages connects to the database, applies pending migrations, and
// wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		PatientRepository: NewPatientRepository(db, log),
		RecordsRepository: NewRecordsRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
