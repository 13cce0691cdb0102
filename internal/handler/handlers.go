package handler

import (
	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/internal/handler/grpc"
	"github.com/MKhiriev/go-notes-auth/internal/handler/http"
	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/metrics"
	"github.com/MKhiriev/go-notes-auth/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every configured server address.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, collector metrics.MetricsCollector, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, collector, gatherer, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
