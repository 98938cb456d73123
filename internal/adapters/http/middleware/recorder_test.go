package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantSize   int64
		wantSent   bool
	}{
		{
			name:       "nothing written",
			write:      func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "implicit 200 on write",
			write:      func(w http.ResponseWriter) { _, _ = w.Write([]byte("[ ] Milk")) },
			wantStatus: http.StatusOK,
			wantSize:   8,
			wantSent:   true,
		},
		{
			name: "first status wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusSeeOther)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusSeeOther,
			wantSent:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			underlying := httptest.NewRecorder()
			rec := recordStatus(underlying)
			tt.write(rec)

			assert.Equal(t, tt.wantStatus, rec.status)
			assert.Equal(t, tt.wantSize, rec.size)
			assert.Equal(t, tt.wantSent, rec.written)
			assert.Same(t, underlying, rec.Unwrap())
		})
	}
}

func TestRoutePattern(t *testing.T) {
	t.Parallel()

	var got string
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req)
			got = routePattern(req)
		})
	})
	r.Post("/lists/{listID}/todos/{todoID}/toggle", func(http.ResponseWriter, *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/lists/3/todos/9/toggle", http.NoBody))

	assert.Equal(t, "/lists/{listID}/todos/{todoID}/toggle", got)
}

func TestRoutePattern_OutsideRouter(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/lists", http.NoBody)
	assert.Equal(t, unmatchedRoute, routePattern(req))
}
