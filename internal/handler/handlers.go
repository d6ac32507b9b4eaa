package handler

import (
	"github.com/MKhiriev/go-idiotic-api/internal/config"
	"github.com/MKhiriev/go-idiotic-api/internal/handler/http"
	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"github.com/MKhiriev/go-idiotic-api/internal/metrics"
	"github.com/MKhiriev/go-idiotic-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. collector may
// be nil to run without metrics.
func NewHandlers(services *service.Services, collector *metrics.Collector, cfg config.ServerListener, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, collector, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
