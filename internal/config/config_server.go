package config

import (
	"fmt"
	"time"
)

// ServerListener holds the gateway listener settings.
type ServerListener struct {
	HTTPAddress     string
	ShutdownTimeout time.Duration
}

// ServerConfig is the configuration view used by the gateway.
type ServerConfig struct {
	API      APIConfig
	Server   ServerListener
	LogLevel string
}

// GetServerConfig parses the gateway command line, merges it with the other
// sources and validates the result. The API token is required.
func GetServerConfig(name string, args []string) (*ServerConfig, error) {
	flagCfg, err := ParseServerFlags(name, args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	api, err := newAPIConfig(cfg.API)
	if err != nil {
		return nil, err
	}

	serverCfg := &ServerConfig{
		API: api,
		Server: ServerListener{
			HTTPAddress:     cfg.Server.HTTPAddress,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
		LogLevel: cfg.Log.Level,
	}

	return serverCfg, serverCfg.API.validate()
}
