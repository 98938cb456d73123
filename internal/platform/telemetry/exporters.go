package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/go-todo-lists/internal/platform/config"
)

var (
	errUnsupportedExporter = errors.New("unsupported exporter")
	errBadEndpoint         = errors.New("otlp endpoint must be an absolute http(s) URL")
)

func spanExporter(ctx context.Context, cfg config.TelemetryConfig, out io.Writer) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case config.ExporterStdout:
		return stdouttrace.New(stdouttrace.WithWriter(out), stdouttrace.WithPrettyPrint())
	case config.ExporterOTLP:
		endpoint, err := collectorURL(cfg.Endpoint)
		if err != nil {
			return nil, err
		}
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	}
	return nil, fmt.Errorf("%w: %q", errUnsupportedExporter, cfg.Exporter)
}

func metricExporter(ctx context.Context, cfg config.TelemetryConfig, out io.Writer) (sdkmetric.Exporter, error) {
	switch cfg.Exporter {
	case config.ExporterStdout:
		return stdoutmetric.New(stdoutmetric.WithWriter(out))
	case config.ExporterOTLP:
		endpoint, err := collectorURL(cfg.Endpoint)
		if err != nil {
			return nil, err
		}
		return otlpmetrichttp.New(ctx, otlpmetrichttp.WithEndpointURL(endpoint))
	}
	return nil, fmt.Errorf("%w: %q", errUnsupportedExporter, cfg.Exporter)
}

// collectorURL checks the endpoint before the exporter sees it; the OTLP
// options silently fall back to localhost on a bad URL.
func collectorURL(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w: %q", errBadEndpoint, endpoint)
	}
	return u.String(), nil
}
