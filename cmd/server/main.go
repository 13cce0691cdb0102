package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/internal/handler"
	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/metrics"
	"github.com/MKhiriev/go-notes-auth/internal/server"
	"github.com/MKhiriev/go-notes-auth/internal/service"
	"github.com/MKhiriev/go-notes-auth/internal/store"
	"github.com/MKhiriev/go-notes-auth/internal/tracing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("notes-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Bool("tls", cfg.Server.TLSEnabled()).
		Str("password_scheme", cfg.App.PasswordScheme).
		Str("issuer", cfg.App.JWT.Issuer).
		Str("audience", cfg.App.JWT.Audience).
		Str("tracing_exporter", cfg.Tracing.Exporter).
		Msg("received configs")

	shutdownTracing, err := tracing.Setup(context.Background(), cfg.Tracing, "notes-auth", cfg.App.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up tracing")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Err(err).Msg("error flushing spans")
		}
	}()

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	services, err := service.NewServices(storages, cfg.App, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, collector, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
