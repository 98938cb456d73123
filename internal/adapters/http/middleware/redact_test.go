package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{}
	headers.Set("Cookie", "todo_session=6f1c1f1e-2b1a-4c53-9d4e-2f6f0b8a9c11.sig; todo_flash=abc")
	headers.Set("Authorization", "Bearer abc")
	headers.Set("X-Api-Key", "k-123")
	headers.Set("Content-Type", "application/x-www-form-urlencoded")
	headers.Add("Accept", "text/html")
	headers.Add("Accept", "application/json")

	attrs := middleware.RedactHeaders(headers)

	got := make(map[string]string, len(attrs))
	keys := make([]string, 0, len(attrs))
	for _, a := range attrs {
		got[a.Key] = a.Value.String()
		keys = append(keys, a.Key)
	}

	assert.Equal(t, []string{"Accept", "Authorization", "Content-Type", "Cookie", "X-Api-Key"}, keys)
	assert.Equal(t, "[REDACTED]", got["Cookie"])
	assert.Equal(t, "[REDACTED]", got["Authorization"])
	assert.Equal(t, "[REDACTED]", got["X-Api-Key"])
	assert.Equal(t, "application/x-www-form-urlencoded", got["Content-Type"])
	assert.Equal(t, "text/html,application/json", got["Accept"])
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RedactHeaders(http.Header{}))
}
