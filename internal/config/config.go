// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// CLI and the gateway. It is populated by merging an optional JSON file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the remote API credentials and transport settings.
	API API `envPrefix:"API_"`

	// Server holds the gateway listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Batch holds settings for the batch job runner.
	Batch Batch `envPrefix:"BATCH_"`

	// Log holds the logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API configures the idiotic client.
type API struct {
	// Token is the API token sent with every request.
	// Env: API_TOKEN
	Token string `env:"TOKEN"`

	// Environment is "production" (default) or "development".
	// Env: API_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// BaseURL overrides the environment's base URL.
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single remote request (e.g. "30s").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the gateway.
type Server struct {
	// HTTPAddress is the TCP address the gateway listens on, in "host:port"
	// format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Batch configures the batch job runner.
type Batch struct {
	// Concurrency is the number of jobs run at the same time.
	// Env: BATCH_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`

	// OutputDir is where job results are written when a job has no
	// explicit output path.
	// Env: BATCH_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`
}

// Log configures logging.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults applied to fields that no source has set.
const (
	DefaultEnvironment     = "production"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultHTTPAddress     = "localhost:8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultConcurrency     = 4
	DefaultOutputDir       = "."
	DefaultLogLevel        = "info"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			Environment:    DefaultEnvironment,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Batch: Batch{
			Concurrency: DefaultConcurrency,
			OutputDir:   DefaultOutputDir,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// Later sources override non-zero fields of earlier ones:
//  1. JSON file (path taken from env or flags)
//  2. Environment variables
//  3. Command-line flags (flagCfg, may be nil)
//
// Fields still unset afterwards receive their defaults.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flagCfg).
		withJSON().
		build()
}
