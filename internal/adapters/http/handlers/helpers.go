package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/logging"
)

// maxBody caps JSON request bodies. Titles are short; 64 KiB is generous.
const maxBody = 64 << 10

// parseID reads a numeric id from the named chi path parameter.
func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid integer"},
		}
	}
	return id, nil
}

func sessionID(r *http.Request) string {
	return middleware.SessionIDFromContext(r.Context())
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "encoding json response",
			slog.Any("error", err))
	}
}

type validatable interface {
	Validate() error
}

// decodeAndValidate reads one JSON value from the body into dst and runs
// its Validate. On failure the problem response is already written and
// false is returned.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))

	err := dec.Decode(dst)
	if err == nil && !errors.Is(dec.Decode(&struct{}{}), io.EOF) {
		err = errTrailingData
	}
	if err != nil {
		dto.WriteProblem(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": bodyProblem(err)},
		})
		return false
	}

	if err := dst.Validate(); err != nil {
		dto.WriteProblem(w, r, err)
		return false
	}
	return true
}

var errTrailingData = errors.New("trailing data")

func bodyProblem(err error) string {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return "too large"
	case errors.Is(err, io.EOF):
		return "required"
	case errors.Is(err, errTrailingData):
		return "must hold a single JSON object"
	default:
		return "invalid JSON"
	}
}
