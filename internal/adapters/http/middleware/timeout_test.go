package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/middleware"
)

func TestTimeout_FastHandler(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Location", "/lists/1")
		w.WriteHeader(http.StatusSeeOther)
		_, _ = w.Write([]byte("see other"))
	}))

	rec := serve(h, http.MethodPost, "/lists")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/lists/1", rec.Header().Get("Location"))
	assert.Equal(t, "see other", rec.Body.String())
}

func TestTimeout_HandlerSeesDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	h := middleware.Timeout(time.Second, nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))

	serve(h, http.MethodGet, "/lists")
	assert.True(t, hasDeadline)
}

func TestTimeout_SlowHandlerProblemJSON(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(20*time.Millisecond, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		_, _ = w.Write([]byte("too late"))
	}))

	rec := serve(h, http.MethodGet, "/api/v1/lists")

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), "too late")
}

func TestTimeout_SlowHandlerUsesFailureWriter(t *testing.T) {
	t.Parallel()

	var gotErr error
	fail := func(w http.ResponseWriter, _ *http.Request, err error) {
		gotErr = err
		w.WriteHeader(http.StatusGatewayTimeout)
		_, _ = w.Write([]byte("The request took too long."))
	}

	h := middleware.Timeout(20*time.Millisecond, fail)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	rec := serve(h, http.MethodGet, "/lists")

	require.True(t, errors.Is(gotErr, context.DeadlineExceeded), "err = %v", gotErr)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "The request took too long.", rec.Body.String())
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger(), nil)(
		middleware.Timeout(time.Second, nil)(panicking("seed template missing")),
	)

	rec := serve(h, http.MethodGet, "/api/v1/lists")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
