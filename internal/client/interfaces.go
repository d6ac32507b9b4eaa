// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"

	"github.com/MKhiriev/go-idiotic-api/idiotic"
	"github.com/MKhiriev/go-idiotic-api/internal/config"
	"github.com/MKhiriev/go-idiotic-api/internal/logger"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line in args and blocks until it finishes.
	Run(ctx context.Context, args []string) error
}

// GeneratorFactory builds the API client for one command run. The returned
// closer is called when the command finishes.
type GeneratorFactory func(cfg config.APIConfig, log *logger.Logger) (idiotic.Generator, io.Closer, error)
