package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/medidesk/clinic-backend/internal/logger"
	"github.com/medidesk/clinic-backend/models"
)

// patientRepository is the PostgreSQL-backed implementation of
// [PatientRepository]. It handles patient account lookup against the
// "patient" table for the login flow.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type patientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPatientRepository constructs a [PatientRepository] backed by the
// provided database connection and logger.
func NewPatientRepository(db *DB, logger *logger.Logger) PatientRepository {
	logger.Debug().Msg("creating patient repository")
	return &patientRepository{
		db:     db,
		logger: logger,
	}
}

// FindPatientByPhone retrieves the patient record whose phone number matches
// the given value. The phone is bound as a query parameter; it is never
// interpolated into the SQL text.
//
// Error handling:
//   - empty result set → [ErrPatientNotFound].
//   - any other driver-level or scan error → wrapped as "unexpected DB error".
func (r *patientRepository) FindPatientByPhone(ctx context.Context, phone string) (models.Patient, error) {
	log := logger.FromContext(ctx)

	var foundPatient models.Patient
	row := r.db.QueryRowContext(ctx, findPatientByPhone, phone)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.NoDataFound {
			return models.Patient{}, ErrPatientNotFound
		}

		log.Err(err).Str("func", "*patientRepository.FindPatientByPhone").Msg("error: query failed")
		return models.Patient{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundPatient.PatientID, &foundPatient.Name, &foundPatient.Phone, &foundPatient.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Patient{}, ErrPatientNotFound
		}

		log.Err(err).
			Str("func", "*patientRepository.FindPatientByPhone").
			Str("pg_code", postgresError(err)).
			Msg("error looking up patient by phone")
		return models.Patient{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundPatient, nil
}
