package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-idiotic-api/models"
)

// APIConfig is the resolved idiotic client configuration.
type APIConfig struct {
	Token          string
	Environment    models.Environment
	BaseURL        string
	RequestTimeout time.Duration
}

// ClientBatch holds the batch runner settings of the CLI.
type ClientBatch struct {
	Concurrency int
	OutputDir   string
}

// ClientConfig is the configuration view used by the CLI.
type ClientConfig struct {
	API      APIConfig
	Batch    ClientBatch
	LogLevel string
}

// GetClientConfig merges all sources with flagCfg (the values bound to the
// CLI's flags) and maps the result to a [ClientConfig].
//
// When requireToken is false the token check is skipped, for commands that
// never reach the remote API.
func GetClientConfig(flagCfg *StructuredConfig, requireToken bool) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	api, err := newAPIConfig(cfg.API)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		API: api,
		Batch: ClientBatch{
			Concurrency: cfg.Batch.Concurrency,
			OutputDir:   cfg.Batch.OutputDir,
		},
		LogLevel: cfg.Log.Level,
	}

	if requireToken {
		return clientCfg, clientCfg.API.validate()
	}
	return clientCfg, nil
}

func newAPIConfig(api API) (APIConfig, error) {
	env, err := models.ParseEnvironment(api.Environment)
	if err != nil {
		return APIConfig{}, fmt.Errorf("%w: %w", ErrInvalidAPIConfigs, err)
	}

	return APIConfig{
		Token:          api.Token,
		Environment:    env,
		BaseURL:        api.BaseURL,
		RequestTimeout: api.RequestTimeout,
	}, nil
}
