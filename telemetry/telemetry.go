// Package telemetry wires tracing and metrics for the degrees binaries.
//
// Tracing uses the OpenTelemetry SDK with the stdout exporter; when
// disabled the global no-op provider stays in place. Metrics live in a
// private Prometheus registry served by MetricsHandler.
//
// Usage:
//
//	shutdown, err := telemetry.SetupTracing(ctx, telemetry.TracingConfig{Enabled: true})
//	if err != nil {
//	    return err
//	}
//	defer shutdown(context.Background())
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/multierr"
)

// ErrNilContext is returned when SetupTracing gets a nil context.
var ErrNilContext = errors.New("telemetry: nil context")

// TracingConfig controls SetupTracing.
type TracingConfig struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string

	// Writer receives exported spans. Defaults to os.Stderr so spans never
	// interleave with command output.
	Writer io.Writer
}

// SetupTracing installs a global tracer provider when cfg.Enabled and
// returns a shutdown func that flushes it. The shutdown func is never nil.
func SetupTracing(ctx context.Context, cfg TracingConfig) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }
	if ctx == nil {
		return noop, ErrNilContext
	}
	if !cfg.Enabled {
		return noop, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "degrees"
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(cfg.Writer))
	if err != nil {
		return noop, fmt.Errorf("telemetry: create exporter: %w", err)
	}
	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		return multierr.Append(tp.ForceFlush(ctx), tp.Shutdown(ctx))
	}, nil
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// MetricsHandler serves reg in the Prometheus exposition format.
func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
