package middleware_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/middleware"
)

// OTEL tests are NOT parallel because they modify the global TracerProvider.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})

	return exporter
}

func tracedRouter(status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(nil))
	r.Post("/lists/{listID}/todos/{todoID}/toggle", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func spanAttrs(s tracetest.SpanStub) map[string]any {
	attrs := make(map[string]any, len(s.Attributes))
	for _, a := range s.Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	return attrs
}

func TestOpenTelemetry_SpanNamedAfterRoute(t *testing.T) {
	exporter := setupTracer(t)

	serve(tracedRouter(http.StatusSeeOther), http.MethodPost, "/lists/4/todos/17/toggle")

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP POST /lists/{listID}/todos/{todoID}/toggle", spans[0].Name)

	attrs := spanAttrs(spans[0])
	assert.Equal(t, "POST", attrs["http.method"])
	assert.Equal(t, "/lists/4/todos/17/toggle", attrs["http.target"])
	assert.Equal(t, "/lists/{listID}/todos/{todoID}/toggle", attrs["http.route"])
	assert.Equal(t, int64(http.StatusSeeOther), attrs["http.status_code"])
}

func TestOpenTelemetry_UnmatchedKeepsMethodOnlyName(t *testing.T) {
	exporter := setupTracer(t)

	serve(middleware.OpenTelemetry(nil)(http.NotFoundHandler()), http.MethodGet, "/wp-admin")

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP GET", spans[0].Name)
	assert.Equal(t, "unmatched", spanAttrs(spans[0])["http.route"])
}

func TestOpenTelemetry_ErrorStatusOn5xx(t *testing.T) {
	exporter := setupTracer(t)

	serve(tracedRouter(http.StatusInternalServerError), http.MethodPost, "/lists/1/todos/2/toggle")

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
}

func TestOpenTelemetry_ClientErrorLeavesStatusUnset(t *testing.T) {
	exporter := setupTracer(t)

	serve(tracedRouter(http.StatusNotFound), http.MethodPost, "/lists/1/todos/2/toggle")

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	rec := serve(tracedRouter(http.StatusOK), http.MethodPost, "/lists/1/todos/2/toggle")
	assert.Equal(t, http.StatusOK, rec.Code)
}
