// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package idiotic

import (
	"context"

	"github.com/MKhiriev/go-idiotic-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/generator_mock.go -package=mock

// Generator is the dispatch surface of [Client]. Service code depends on it
// instead of *Client so it can be tested without a remote API.
type Generator interface {
	// Call invokes the endpoint registered under name (or one of its
	// aliases) with params and returns its result.
	Call(ctx context.Context, name string, params Params) (models.Result, error)

	// Lookup returns the descriptor for name, or an error wrapping
	// [ErrUnknownEndpoint].
	Lookup(name string) (models.Endpoint, error)

	// Endpoints lists the endpoints callable in the configured environment.
	Endpoints() []models.Endpoint

	// Environment returns the configured API deployment.
	Environment() models.Environment
}
