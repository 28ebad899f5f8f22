package http

import (
	"time"

	"github.com/MKhiriev/go-blog-list/internal/config"
	"github.com/MKhiriev/go-blog-list/internal/logger"
	"github.com/MKhiriev/go-blog-list/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	corsOrigins    []string
	// testingRoutes mounts POST /api/testing/reset
	testingRoutes bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		corsOrigins:    cfg.Server.CORSOrigins,
		testingRoutes:  cfg.App.IsTest(),
		logger:         logger,
	}
}
