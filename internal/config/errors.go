package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing. Both are fatal at startup.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was provided
	// by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrMissingDatabaseDSN indicates that no database connection string was
	// provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")
)
