package service

import (
	"context"
	"net/url"
	"time"

	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"github.com/MKhiriev/go-idiotic-api/models"
)

// GeneratorLoggingService logs every Generate call with the request-scoped
// logger found in the context.
type GeneratorLoggingService struct {
	inner GeneratorService
}

func NewGeneratorLoggingService() GeneratorServiceWrapper {
	return &GeneratorLoggingService{}
}

func (l *GeneratorLoggingService) Endpoints(ctx context.Context) []models.Endpoint {
	return l.inner.Endpoints(ctx)
}

func (l *GeneratorLoggingService) Describe(ctx context.Context, name string) (models.Endpoint, error) {
	return l.inner.Describe(ctx, name)
}

func (l *GeneratorLoggingService) Generate(ctx context.Context, name string, values url.Values) (models.Result, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	res, err := l.inner.Generate(ctx, name, values)
	if err != nil {
		log.Warn().Err(err).
			Str("endpoint", name).
			Dur("duration", time.Since(start)).
			Msg("generate failed")
		return res, err
	}

	log.Info().
		Str("endpoint", name).
		Str("kind", res.Kind.String()).
		Int("size", len(res.Bytes())).
		Dur("duration", time.Since(start)).
		Msg("generated")
	return res, nil
}

func (l *GeneratorLoggingService) Environment() models.Environment {
	return l.inner.Environment()
}

func (l *GeneratorLoggingService) Wrap(inner GeneratorService) GeneratorService {
	l.inner = inner
	return l
}
