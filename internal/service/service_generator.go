// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-idiotic-api/idiotic"
	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"github.com/MKhiriev/go-idiotic-api/models"
)

type generatorService struct {
	generator idiotic.Generator

	logger *logger.Logger
}

func NewGeneratorService(generator idiotic.Generator, logger *logger.Logger) GeneratorService {
	return &generatorService{
		generator: generator,
		logger:    logger,
	}
}

func (g *generatorService) Endpoints(ctx context.Context) []models.Endpoint {
	return g.generator.Endpoints()
}

func (g *generatorService) Describe(ctx context.Context, name string) (models.Endpoint, error) {
	if strings.TrimSpace(name) == "" {
		return models.Endpoint{}, ErrNoEndpointName
	}
	return g.generator.Lookup(name)
}

func (g *generatorService) Generate(ctx context.Context, name string, values url.Values) (models.Result, error) {
	ep, err := g.Describe(ctx, name)
	if err != nil {
		return models.Result{}, err
	}

	params, err := idiotic.ParseParams(ep, values)
	if err != nil {
		return models.Result{}, err
	}

	return g.generator.Call(ctx, ep.Name, params)
}

func (g *generatorService) Environment() models.Environment {
	return g.generator.Environment()
}
