// Package telemetry installs the OpenTelemetry tracer and meter providers
// and owns the service's metric instruments.
//
//	providers, err := telemetry.Setup(ctx, cfg.Telemetry, os.Stdout)
//	defer providers.Shutdown(ctx)
//	providers.Metrics.ServerRequestTotal.Add(ctx, 1, ...)
//
// With telemetry disabled Setup installs nothing and hands back instruments
// from the no-op meter, so callers never need a nil check.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/go-todo-lists/internal/platform/config"
)

// Metric and span attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("operation")
	AttrSource      = attribute.Key("source")
)

// Providers holds what Setup installed.
type Providers struct {
	Metrics *Metrics

	shutdown []func(context.Context) error
}

// Setup builds the exporters named by cfg, registers the global tracer and
// meter providers and the W3C propagators, and creates the instruments.
// Stdout exporters write to out.
func Setup(ctx context.Context, cfg config.TelemetryConfig, out io.Writer) (*Providers, error) {
	if !cfg.Enabled {
		m, err := NewMetrics(noop.NewMeterProvider(), cfg.ServiceName)
		if err != nil {
			return nil, err
		}
		return &Providers{Metrics: m}, nil
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("building resource: %w", err)
	}

	spans, err := spanExporter(ctx, cfg, out)
	if err != nil {
		return nil, fmt.Errorf("span exporter: %w", err)
	}
	readings, err := metricExporter(ctx, cfg, out)
	if err != nil {
		_ = spans.Shutdown(ctx)
		return nil, fmt.Errorf("metric exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
		sdkmetric.WithResource(res),
	)
	p := &Providers{shutdown: []func(context.Context) error{tp.Shutdown, mp.Shutdown}}

	if p.Metrics, err = NewMetrics(mp, cfg.ServiceName); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops the providers, last installed first. Safe on
// the disabled value.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	for _, stop := range slices.Backward(p.shutdown) {
		if err := stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
