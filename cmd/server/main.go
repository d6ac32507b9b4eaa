package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-idiotic-api/idiotic"
	"github.com/MKhiriev/go-idiotic-api/internal/config"
	"github.com/MKhiriev/go-idiotic-api/internal/handler"
	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"github.com/MKhiriev/go-idiotic-api/internal/metrics"
	"github.com/MKhiriev/go-idiotic-api/internal/server"
	"github.com/MKhiriev/go-idiotic-api/internal/service"
	"github.com/MKhiriev/go-idiotic-api/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).WithDefaults()
	printBuildInfo(info)

	cfg, err := config.GetServerConfig(os.Args[0], os.Args[1:])
	if err != nil {
		logger.NewLogger("idiotic-gateway", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("idiotic-gateway", cfg.LogLevel)
	log.Debug().
		Str("environment", cfg.API.Environment.String()).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	opts := []idiotic.Option{
		idiotic.WithEnvironment(cfg.API.Environment),
		idiotic.WithTimeout(cfg.API.RequestTimeout),
		idiotic.WithLogger(log.Logger),
		idiotic.WithObserver(collector.ObserveAPIRequest),
	}
	if cfg.API.BaseURL != "" {
		opts = append(opts, idiotic.WithBaseURL(cfg.API.BaseURL))
	}

	api, err := idiotic.New(cfg.API.Token, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	services, err := service.NewServices(api, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, collector, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, api)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
