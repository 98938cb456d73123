package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()
	return newTestClientTripping(t, baseURL, 5)
}

// newTestClientTripping opens the breaker after maxFailures failed calls.
func newTestClientTripping(t *testing.T, baseURL string, maxFailures int) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   maxFailures,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "seed-catalogue", nil, slog.New(slog.DiscardHandler))
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
}

func TestSeedClient_Seeds(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/seed-lists" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"lists": []map[string]any{{
				"name": "Groceries",
				"items": []map[string]any{
					{"label": "Milk", "completed": false},
					{"label": "Eggs", "completed": true},
				},
			}},
		})
	}))
	defer ts.Close()

	client := NewSeedClient(newTestClient(t, ts.URL), nil)
	seeds, err := client.Seeds(context.Background())
	if err != nil {
		t.Fatalf("Seeds() error = %v", err)
	}

	if len(seeds) != 1 {
		t.Fatalf("len(seeds) = %d, want 1", len(seeds))
	}
	want := todolist.Seed{
		Title: "Groceries",
		Todos: []todolist.SeedTodo{{Title: "Milk"}, {Title: "Eggs", Done: true}},
	}
	if seeds[0].Title != want.Title || len(seeds[0].Todos) != 2 ||
		seeds[0].Todos[0] != want.Todos[0] || seeds[0].Todos[1] != want.Todos[1] {
		t.Errorf("seeds[0] = %+v, want %+v", seeds[0], want)
	}
}

func TestSeedClient_Seeds_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{name: "forbidden", status: http.StatusForbidden, wantErr: domain.ErrForbidden},
		{name: "throttled", status: http.StatusTooManyRequests, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer ts.Close()

			_, err := NewSeedClient(newTestClient(t, ts.URL), nil).Seeds(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Seeds() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSeedClient_Seeds_BadBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	}))
	defer ts.Close()

	if _, err := NewSeedClient(newTestClient(t, ts.URL), nil).Seeds(context.Background()); err == nil {
		t.Fatal("Seeds() error = nil, want decode error")
	}
}

func TestSeedClient_Health(t *testing.T) {
	t.Parallel()

	client := NewSeedClient(newTestClient(t, "http://localhost"), nil)

	if got := client.Name(); got != "seed-catalogue" {
		t.Errorf("Name() = %q, want %q", got, "seed-catalogue")
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil for closed breaker", err)
	}
}

func TestSeedClient_Seeds_RevalidatesWithETag(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Header.Get("If-None-Match") == `"v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("ETag", `"v1"`)
		writeJSON(t, w, map[string]any{
			"lists": []map[string]any{{"name": "Chores", "items": []map[string]any{{"label": "Vacuum"}}}},
		})
	}))
	defer ts.Close()

	client := NewSeedClient(newTestClient(t, ts.URL), nil)

	first, err := client.Seeds(context.Background())
	if err != nil {
		t.Fatalf("first Seeds() error = %v", err)
	}
	second, err := client.Seeds(context.Background())
	if err != nil {
		t.Fatalf("second Seeds() error = %v", err)
	}

	if calls.Load() != 2 {
		t.Errorf("catalogue calls = %d, want 2", calls.Load())
	}
	if len(second) != 1 || second[0].Title != "Chores" {
		t.Errorf("revalidated seeds = %+v, want the cached Chores list", second)
	}

	second[0].Title = "mutated"
	if first[0].Title != "Chores" {
		t.Error("callers share the cached slice")
	}
}

func TestSeedClient_Seeds_Unreachable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := NewSeedClient(newTestClient(t, url), nil).Seeds(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Seeds() error = %v, want ErrUnavailable", err)
	}
}

func TestSeedClient_HealthDegradedWhenBreakerOpen(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := NewSeedClient(newTestClientTripping(t, ts.URL, 1), nil)
	if _, err := client.Seeds(context.Background()); err == nil {
		t.Fatal("Seeds() error = nil, want a gateway failure")
	}

	err := client.HealthCheck(context.Background())
	if !errors.Is(err, ports.ErrDegraded) {
		t.Errorf("HealthCheck() = %v, want ErrDegraded", err)
	}
}
