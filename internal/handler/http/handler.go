package http

import (
	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"github.com/MKhiriev/go-idiotic-api/internal/metrics"
	"github.com/MKhiriev/go-idiotic-api/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Collector

	logger *logger.Logger
}

// NewHandler builds the gateway handler. collector may be nil, in which case
// no metrics are recorded and /metrics is not served.
func NewHandler(services *service.Services, collector *metrics.Collector, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  collector,
		logger:   logger,
	}
}
