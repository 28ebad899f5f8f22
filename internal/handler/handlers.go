package handler

import (
	"github.com/MKhiriev/go-blog-list/internal/config"
	"github.com/MKhiriev/go-blog-list/internal/handler/http"
	"github.com/MKhiriev/go-blog-list/internal/logger"
	"github.com/MKhiriev/go-blog-list/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. The REST handler
// is created when an HTTP address is configured.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
