package http

import (
	"github.com/MKhiriev/my-gram/internal/config"
	"github.com/MKhiriev/my-gram/internal/logger"
	"github.com/MKhiriev/my-gram/internal/service"
	"github.com/MKhiriev/my-gram/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	traceIDs *utils.TraceIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		traceIDs: utils.NewTraceIDGenerator(),
		logger:   logger,
	}
}
