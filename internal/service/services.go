package service

import (
	"github.com/medidesk/clinic-backend/internal/config"
	"github.com/medidesk/clinic-backend/internal/logger"
	"github.com/medidesk/clinic-backend/internal/store"
)

// Services aggregates all business-logic services for injection into the
// transport layer.
type Services struct {
	AuthService    AuthService
	RecordsService RecordsService
}

// NewServices wires up all services on top of the given storages.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	logger.Info().Msg("creating services...")

	return &Services{
		AuthService:    NewAuthService(storages.PatientRepository, cfg.Auth, logger),
		RecordsService: NewRecordsService(storages.RecordsRepository, cfg.Storage.DB, logger),
	}
}
