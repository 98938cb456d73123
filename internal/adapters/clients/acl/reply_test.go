package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
)

func reply(status int, contentType, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	return resp
}

func TestFromResponse_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, domain.ErrValidation},
		{http.StatusUnprocessableEntity, domain.ErrValidation},
		{http.StatusUnauthorized, domain.ErrForbidden},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusTooManyRequests, domain.ErrUnavailable},
		{http.StatusInternalServerError, domain.ErrUnavailable},
		{http.StatusServiceUnavailable, domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			err := FromResponse(reply(tt.status, "", ""))
			require.ErrorIs(t, err, tt.want)

			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.Status)
			assert.Equal(t, http.StatusText(tt.status), se.Detail)
		})
	}
}

func TestFromResponse_UnmappedStatus(t *testing.T) {
	t.Parallel()

	err := FromResponse(reply(http.StatusTeapot, "", ""))

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Nil(t, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "seed catalogue replied 418")
}

func TestFromResponse_ProblemDetail(t *testing.T) {
	t.Parallel()

	body := `{"title":"Not Found","status":404,"detail":"catalogue \"winter\" is retired"}`
	err := FromResponse(reply(http.StatusNotFound, "application/problem+json; charset=utf-8", body))

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), `catalogue "winter" is retired`)
}

func TestFromResponse_DetailIgnoredForPlainJSON(t *testing.T) {
	t.Parallel()

	err := FromResponse(reply(http.StatusConflict, "application/json", `{"detail":"ignored"}`))

	require.ErrorIs(t, err, domain.ErrConflict)
	assert.NotContains(t, err.Error(), "ignored")
}

func TestFromResponse_FieldProblems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "invalid-params",
			body: `{"status":400,"invalid-params":[{"name":"region","reason":"unknown region"}]}`,
		},
		{
			name: "legacy errors",
			body: `{"status":400,"errors":[{"location":"body.region","message":"unknown region"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := FromResponse(reply(http.StatusBadRequest, "application/problem+json", tt.body))

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, map[string]string{"region": "unknown region"}, verr.Fields)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestFromResponse_MalformedProblem(t *testing.T) {
	t.Parallel()

	err := FromResponse(reply(http.StatusBadGateway, "application/problem+json", "{oops"))

	require.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Contains(t, err.Error(), "Bad Gateway")
}
