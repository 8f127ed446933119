package store

import (
	"github.com/medidesk/clinic-backend/migrations"
)

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
