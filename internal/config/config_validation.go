// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-idiotic-api/models"
)

// validate checks the merged [StructuredConfig]. The token is not required
// here: commands such as "endpoints" and "version" work without one, so the
// token is checked by the client and server views.
func (cfg *StructuredConfig) validate() error {
	if _, err := models.ParseEnvironment(cfg.API.Environment); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAPIConfigs, err)
	}

	if cfg.API.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAPIConfigs)
	}

	if cfg.Server.HTTPAddress != "" {
		var addr NetAddress
		if err := addr.Set(cfg.Server.HTTPAddress); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
		}
	}

	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative shutdown timeout", ErrInvalidServerConfigs)
	}

	if cfg.Batch.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1", ErrInvalidBatchConfigs)
	}

	return nil
}

func (cfg *APIConfig) validate() error {
	if cfg.Token == "" {
		return ErrMissingToken
	}
	return nil
}
