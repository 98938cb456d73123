package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/middleware"
)

func panicking(v any) http.Handler {
	return http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(v) })
}

func TestRecovery_PassesThrough(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger(), nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := serve(h, http.MethodPost, "/api/v1/lists")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRecovery_DefaultsToProblemJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Recovery(testLogger(&buf), nil)(panicking("list index corrupted"))

	rec := serve(h, http.MethodGet, "/api/v1/lists/4")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var body dto.Problem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, http.StatusInternalServerError, body.Status)
	assert.NotContains(t, body.Detail, "corrupted")

	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "list index corrupted")
	assert.Contains(t, out, "stack=")
}

func TestRecovery_UsesFailureWriter(t *testing.T) {
	t.Parallel()

	var gotErr error
	fail := func(w http.ResponseWriter, _ *http.Request, err error) {
		gotErr = err
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<h1>Something went wrong</h1>"))
	}

	h := middleware.Recovery(discardLogger(), fail)(panicking("boom"))
	rec := serve(h, http.MethodGet, "/lists/1")

	require.Error(t, gotErr)
	assert.NotContains(t, gotErr.Error(), "boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
}

func TestRecovery_HeadersAlreadySent(t *testing.T) {
	t.Parallel()

	called := false
	fail := func(http.ResponseWriter, *http.Request, error) { called = true }

	h := middleware.Recovery(discardLogger(), fail)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("-- Groceries --\n"))
		panic("mid-stream")
	}))

	rec := serve(h, http.MethodGet, "/api/v1/lists/1/text")

	assert.False(t, called, "failure writer must not run once the response started")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "-- Groceries --\n", rec.Body.String())
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger(), nil)(panicking(http.ErrAbortHandler))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serve(h, http.MethodGet, "/lists")
	})
}
