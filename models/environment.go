// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// ErrUnknownEnvironment is returned by [ParseEnvironment] for values that name
// neither deployment of the remote API.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Environment selects which deployment of the remote API a client talks to.
// The two deployments differ in host, auth header name, path layout and
// endpoint availability.
type Environment int

const (
	// Production is the stable public API. Most endpoints are disabled here.
	Production Environment = iota

	// Development is the development API exposing every endpoint under
	// category-nested paths.
	Development
)

// String returns the canonical lowercase name of the environment.
func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Development:
		return "development"
	default:
		return "unknown"
	}
}

// ParseEnvironment converts a user-supplied name into an [Environment].
// Accepted values are "prod", "production", "dev" and "development" in any
// case. An empty string yields [Production].
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "prod", "production":
		return Production, nil
	case "dev", "development":
		return Development, nil
	default:
		return Production, ErrUnknownEnvironment
	}
}
