package handler

import (
	"github.com/medidesk/clinic-backend/internal/config"
	"github.com/medidesk/clinic-backend/internal/handler/http"
	"github.com/medidesk/clinic-backend/internal/logger"
	"github.com/medidesk/clinic-backend/internal/service"
)

// Handlers aggregates all transport handlers of the application.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by the server
// configuration. At least one transport must be configured.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
