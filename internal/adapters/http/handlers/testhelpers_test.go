package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
)

const testSession = "0b9e6f3c-7a2d-4e51-8c1f-5d3a2b1e4f60"

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newRequest builds a request that already carries the test session id.
func newRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(middleware.WithSessionID(req.Context(), testSession))
}

// groceries returns a list "Groceries" (id 1) holding "Milk" (id 2, not
// done) and "Bread" (id 3, done).
func groceries(t *testing.T) *todolist.List {
	t.Helper()
	c := todolist.NewCollection()
	l := c.NewList("Groceries")
	if _, err := c.NewTodo(l, "Milk"); err != nil {
		t.Fatalf("NewTodo: %v", err)
	}
	bread, err := c.NewTodo(l, "Bread")
	if err != nil {
		t.Fatalf("NewTodo: %v", err)
	}
	bread.MarkDone()
	return l
}

func newTodo(t *testing.T, title string, done bool) *todo.Todo {
	t.Helper()
	c := todolist.NewCollection()
	l := c.NewList("scratch")
	td, err := c.NewTodo(l, title)
	if err != nil {
		t.Fatalf("NewTodo: %v", err)
	}
	if done {
		td.MarkDone()
	}
	return td
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
