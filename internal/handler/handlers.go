package handler

import (
	"github.com/MKhiriev/my-gram/internal/config"
	"github.com/MKhiriev/my-gram/internal/handler/http"
	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/service"
)

// Handlers groups the transport handlers exposed by the server.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
