package http

import (
	"time"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/metrics"
	"github.com/MKhiriev/go-notes-auth/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	saveToken      bool
	requestTimeout time.Duration
	limiter        *ipRateLimiter

	collector metrics.MetricsCollector
	gatherer  prometheus.Gatherer

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A nil collector records nothing and a
// nil gatherer disables the /metrics route.
func NewHandler(services *service.Services, cfg *config.StructuredConfig, collector metrics.MetricsCollector, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	if collector == nil {
		collector = metrics.Nop{}
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		saveToken:      cfg.App.JWT.SaveToken,
		requestTimeout: cfg.Server.RequestTimeout,
		limiter:        newIPRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst),
		collector:      collector,
		gatherer:       gatherer,
		logger:         logger,
	}
}
