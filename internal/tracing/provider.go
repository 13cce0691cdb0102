// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tracing installs the process-wide OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc flushes pending spans and stops the exporter.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup builds a tracer provider for cfg and registers it globally together
// with the W3C trace-context propagator. With the "none" exporter nothing is
// registered and spans stay no-ops.
func Setup(ctx context.Context, cfg config.Tracing, serviceName, serviceVersion string, log *logger.Logger) (ShutdownFunc, error) {
	if cfg.Exporter == "" || cfg.Exporter == config.TracingExporterNone {
		log.Debug().Msg("tracing disabled")
		return noopShutdown, nil
	}

	tp, err := newProvider(ctx, cfg, serviceName, serviceVersion, os.Stdout)
	if err != nil {
		return noopShutdown, err
	}

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	log.Info().
		Str("exporter", cfg.Exporter).
		Float64("sample_ratio", cfg.SampleRatio).
		Msg("tracing enabled")

	return tp.Shutdown, nil
}

func newProvider(ctx context.Context, cfg config.Tracing, serviceName, serviceVersion string, stdout io.Writer) (*sdktrace.TracerProvider, error) {
	exporter, err := newExporter(ctx, cfg, stdout)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("error building trace resource: %w", err)
	}

	ratio := cfg.SampleRatio
	if ratio <= 0 {
		ratio = 1
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	), nil
}

func newExporter(ctx context.Context, cfg config.Tracing, stdout io.Writer) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case config.TracingExporterOTLP:
		exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
		if err != nil {
			return nil, fmt.Errorf("error creating otlp exporter: %w", err)
		}
		return exporter, nil
	case config.TracingExporterStdout:
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(stdout))
		if err != nil {
			return nil, fmt.Errorf("error creating stdout exporter: %w", err)
		}
		return exporter, nil
	default:
		return nil, fmt.Errorf("%w: unknown exporter %q", config.ErrInvalidTracingConfigs, cfg.Exporter)
	}
}
