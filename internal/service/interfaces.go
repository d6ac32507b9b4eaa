package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-idiotic-api/models"
)

// GeneratorService exposes the remote API to transports (gateway, CLI, batch
// runner) that receive parameters as strings.
type GeneratorService interface {
	// Endpoints lists the endpoints callable in the configured environment.
	Endpoints(ctx context.Context) []models.Endpoint

	// Describe returns the descriptor registered under name or an alias.
	Describe(ctx context.Context, name string) (models.Endpoint, error)

	// Generate parses values against the endpoint's parameter kinds and
	// performs the call.
	Generate(ctx context.Context, name string, values url.Values) (models.Result, error)

	// Environment returns the configured API deployment.
	Environment() models.Environment
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// GeneratorServiceWrapper defines middleware composition for GeneratorService.
// Implementations wrap an existing GeneratorService to add behavior such as
// logging.
type GeneratorServiceWrapper interface {
	Wrap(GeneratorService) GeneratorService
}
