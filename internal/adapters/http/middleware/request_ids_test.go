package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/middleware"
)

func captureIDs(got *[2]string) http.Handler {
	return http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got[0] = middleware.RequestIDFromContext(r.Context())
		got[1] = middleware.CorrelationIDFromContext(r.Context())
	})
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		wantKeep bool
	}{
		{name: "absent", header: ""},
		{name: "well formed", header: "req-7f3a.42", wantKeep: true},
		{name: "too long", header: strings.Repeat("a", 129)},
		{name: "log injection", header: "abc\nlevel=ERROR"},
		{name: "spaces", header: "two words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got [2]string
			h := middleware.RequestID()(captureIDs(&got))

			req := httptest.NewRequest(http.MethodGet, "/lists", http.NoBody)
			if tt.header != "" {
				req.Header.Set("X-Request-ID", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if tt.wantKeep {
				assert.Equal(t, tt.header, got[0])
			} else {
				assert.Regexp(t, uuidPattern, got[0])
			}
			assert.Equal(t, got[0], rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "falls back to request id", want: "req-1"},
		{name: "keeps inbound", header: "corr-9", want: "corr-9"},
		{name: "rejects malformed inbound", header: "corr\t9", want: "req-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got [2]string
			h := middleware.RequestID()(middleware.CorrelationID()(captureIDs(&got)))

			req := httptest.NewRequest(http.MethodGet, "/lists", http.NoBody)
			req.Header.Set("X-Request-ID", "req-1")
			if tt.header != "" {
				req.Header.Set("X-Correlation-ID", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, got[1])
			assert.Equal(t, tt.want, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestIDsFromEmptyContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RequestIDFromContext(context.Background()))
	assert.Empty(t, middleware.CorrelationIDFromContext(context.Background()))
}

func TestIDContextRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := middleware.WithRequestID(context.Background(), "r-1")
	ctx = middleware.WithCorrelationID(ctx, "c-1")

	assert.Equal(t, "r-1", middleware.RequestIDFromContext(ctx))
	assert.Equal(t, "c-1", middleware.CorrelationIDFromContext(ctx))
}
