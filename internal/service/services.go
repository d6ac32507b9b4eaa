package service

import (
	"github.com/MKhiriev/go-idiotic-api/idiotic"
	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"github.com/MKhiriev/go-idiotic-api/models"
)

type Services struct {
	GeneratorService GeneratorService
	AppInfoService   AppInfoService
}

// NewServices builds the service set around generator. Generate calls are
// logged through [GeneratorLoggingService].
func NewServices(generator idiotic.Generator, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		GeneratorService: NewGeneratorLoggingService().Wrap(NewGeneratorService(generator, logger)),
		AppInfoService:   appInfo,
	}, nil
}
