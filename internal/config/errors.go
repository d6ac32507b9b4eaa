package config

import "errors"

// Validation errors returned when the merged configuration is incomplete or
// invalid.
var (
	// ErrMissingToken indicates that no source provided an API token.
	ErrMissingToken = errors.New("api token is not set")
	// ErrInvalidAPIConfigs indicates invalid API settings (unknown
	// environment, negative timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidServerConfigs indicates invalid gateway settings
	// (for example, a malformed listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBatchConfigs indicates invalid batch runner settings
	// (for example, zero concurrency).
	ErrInvalidBatchConfigs = errors.New("invalid batch configuration")
)
