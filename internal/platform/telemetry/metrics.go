package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

const meterName = "github.com/jsamuelsen11/go-todo-lists"

// Metrics is the set of instruments the service records into.
type Metrics struct {
	// Inbound HTTP, labelled by method, route and status.
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter

	// Calls to the seed catalogue, labelled by peer service and result.
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// List service calls by operation and result.
	TodoOperationTotal metric.Int64Counter

	// SessionsStarted counts new sessions by how they were seeded.
	SessionsStarted metric.Int64Counter
	// SessionsExpired counts sessions removed by the janitor.
	SessionsExpired metric.Int64Counter
}

type instrument struct {
	name, desc, unit string
}

// NewMetrics creates every instrument on mp.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(meterName, metric.WithInstrumentationAttributes(semconv.ServiceName(serviceName)))

	var (
		m   Metrics
		err error
	)
	histogram := func(in instrument) metric.Float64Histogram {
		if err != nil {
			return nil
		}
		var h metric.Float64Histogram
		h, err = meter.Float64Histogram(in.name, metric.WithDescription(in.desc), metric.WithUnit(in.unit))
		if err != nil {
			err = fmt.Errorf("creating %s: %w", in.name, err)
		}
		return h
	}
	counter := func(in instrument) metric.Int64Counter {
		if err != nil {
			return nil
		}
		var c metric.Int64Counter
		c, err = meter.Int64Counter(in.name, metric.WithDescription(in.desc), metric.WithUnit(in.unit))
		if err != nil {
			err = fmt.Errorf("creating %s: %w", in.name, err)
		}
		return c
	}

	m.ServerRequestDuration = histogram(instrument{"http.server.request.duration", "Duration of inbound HTTP requests", "s"})
	m.ServerRequestTotal = counter(instrument{"http.server.request.total", "Inbound HTTP requests", "{request}"})
	m.ClientRequestDuration = histogram(instrument{"http.client.request.duration", "Duration of seed catalogue calls", "s"})
	m.ClientRequestTotal = counter(instrument{"http.client.request.total", "Seed catalogue calls", "{request}"})
	m.TodoOperationTotal = counter(instrument{"todos.operation.total", "To-do list service operations", "{operation}"})
	m.SessionsStarted = counter(instrument{"todos.sessions.started", "Sessions created on first visit", "{session}"})
	m.SessionsExpired = counter(instrument{"todos.sessions.expired", "Expired sessions removed by the sweeper", "{session}"})

	if err != nil {
		return nil, err
	}
	return &m, nil
}
