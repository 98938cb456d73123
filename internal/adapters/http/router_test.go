package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/go-todo-lists/internal/adapters/http"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/views"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
	"github.com/jsamuelsen11/go-todo-lists/mocks"
)

const testCookieName = "todo_session"

func newTestHandlers(t *testing.T) (adapthttp.Handlers, *mocks.MockListService, *mocks.MockHealthRegistry) {
	t.Helper()
	svc := mocks.NewMockListService(t)
	registry := mocks.NewMockHealthRegistry(t)

	renderer, err := views.New()
	if err != nil {
		t.Fatalf("views.New() error = %v", err)
	}

	return adapthttp.Handlers{
		Pages:  handlers.NewPageHandler(svc, renderer),
		Lists:  handlers.NewListHandler(svc),
		Health: handlers.NewHealthHandler(registry),
		Static: renderer.Static(),
		Session: middleware.Session(middleware.SessionOptions{
			CookieName: testCookieName,
			Secret:     []byte("router-test-secret-value"),
			TTL:        time.Hour,
		}),
	}, svc, registry
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockListService) {
	t.Helper()
	h, svc, _ := newTestHandlers(t)
	return adapthttp.NewRouter(h), svc
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/static/*"},
		{http.MethodGet, "/"},
		{http.MethodGet, "/lists"},
		{http.MethodPost, "/lists"},
		{http.MethodGet, "/lists/new"},
		{http.MethodGet, "/lists/{listID}"},
		{http.MethodPost, "/lists/{listID}"},
		{http.MethodGet, "/lists/{listID}/edit"},
		{http.MethodPost, "/lists/{listID}/destroy"},
		{http.MethodPost, "/lists/{listID}/complete_all"},
		{http.MethodPost, "/lists/{listID}/todos"},
		{http.MethodPost, "/lists/{listID}/todos/{todoID}/toggle"},
		{http.MethodPost, "/lists/{listID}/todos/{todoID}/destroy"},
		{http.MethodGet, "/api/v1/lists"},
		{http.MethodPost, "/api/v1/lists"},
		{http.MethodGet, "/api/v1/lists/{listID}"},
		{http.MethodPatch, "/api/v1/lists/{listID}"},
		{http.MethodDelete, "/api/v1/lists/{listID}"},
		{http.MethodGet, "/api/v1/lists/{listID}/text"},
		{http.MethodPost, "/api/v1/lists/{listID}/complete_all"},
		{http.MethodPost, "/api/v1/lists/{listID}/todos"},
		{http.MethodPost, "/api/v1/lists/{listID}/todos/{todoID}/toggle"},
		{http.MethodDelete, "/api/v1/lists/{listID}/todos/{todoID}"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	h, _, registry := newTestHandlers(t)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(h, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_HealthHasNoSessionCookie(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if len(rec.Result().Cookies()) != 0 {
		t.Errorf("health response set cookies: %v", rec.Result().Cookies())
	}
}

func TestRouter_IntegrationListLists(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	svc.EXPECT().ListLists(mock.Anything, mock.AnythingOfType("string")).Return([]*todolist.List{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var sessionSet bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName {
			sessionSet = true
		}
	}
	if !sessionSet {
		t.Error("API response did not set the session cookie")
	}
}

func TestRouter_SessionReachesService(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	const id = "1d7a5c2e-9f3b-4a68-8e21-6b4c0d9f7a35"
	svc.EXPECT().ListLists(mock.Anything, id).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/lists", nil)
	req.AddCookie(&http.Cookie{
		Name:  testCookieName,
		Value: middleware.SignSessionID(id, []byte("router-test-secret-value")),
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_StaticStylesheet(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("Content-Type = %q, want text/css", ct)
	}
}

func TestRouter_NotFoundRendersPage(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/lists", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
