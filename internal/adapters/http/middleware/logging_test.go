package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/logging"
)

func TestLogging_StartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Post("/lists/{listID}/todos", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	})

	serve(r, http.MethodPost, "/lists/12/todos")

	out := buf.String()
	assert.Contains(t, out, "request started")
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "method=POST")
	assert.Contains(t, out, "path=/lists/12/todos")
	assert.Contains(t, out, "route=/lists/{listID}/todos")
	assert.Contains(t, out, "status=303")
	assert.Contains(t, out, "duration=")
}

func TestLogging_UnmatchedRoute(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(testLogger(&buf))(http.NotFoundHandler())

	serve(h, http.MethodGet, "/nope")

	assert.Contains(t, buf.String(), "route=unmatched")
	assert.Contains(t, buf.String(), "status=404")
}

func TestLogging_ContextLoggerCarriesIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.RequestID()(
		middleware.CorrelationID()(
			middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				logging.FromContext(r.Context()).InfoContext(r.Context(), "list created")
			})),
		),
	)

	req := httptest.NewRequest(http.MethodPost, "/lists", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-test")
	req.Header.Set("X-Correlation-ID", "corr-log-test")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "list created")
	assert.Contains(t, out, "request_id=req-log-test")
	assert.Contains(t, out, "correlation_id=corr-log-test")
}

func TestLogging_QuietPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path      string
		wantLines bool
	}{
		{path: "/health/live"},
		{path: "/static/app.css"},
		{path: "/lists", wantLines: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := middleware.Logging(infoLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

			serve(h, http.MethodGet, tt.path)

			if tt.wantLines {
				assert.Contains(t, buf.String(), "request completed")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestLogging_DebugHeadersAreRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/lists", http.NoBody)
	req.Header.Set("Cookie", "todo_session=secret-session-value")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "request headers")
	assert.NotContains(t, out, "secret-session-value")
}
