package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/logging"
)

// ContentTypeProblem is the media type of every API error body.
const ContentTypeProblem = "application/problem+json"

// Problem is an RFC 9457 problem details body.
type Problem struct {
	Type          string         `json:"type"`
	Title         string         `json:"title"`
	Status        int            `json:"status"`
	Detail        string         `json:"detail,omitempty"`
	Instance      string         `json:"instance,omitempty"`
	InvalidParams []InvalidParam `json:"invalid-params,omitempty"`
}

// InvalidParam names one rejected input and why.
type InvalidParam struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Server-side failures never echo the underlying error.
var opaqueDetail = map[int]string{
	http.StatusInternalServerError: "an internal error occurred",
	http.StatusGatewayTimeout:      "the request timed out",
}

// NewProblem describes err for the request r.
func NewProblem(r *http.Request, err error) Problem {
	status := StatusOf(err)

	p := Problem{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.URL.RequestURI(),
	}
	if d, ok := opaqueDetail[status]; ok {
		p.Detail = d
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		p.InvalidParams = invalidParams(verr.Fields)
	}
	return p
}

// WriteProblem answers r with the problem body for err. Server-side
// failures are logged with the request's logger.
func WriteProblem(w http.ResponseWriter, r *http.Request, err error) {
	p := NewProblem(r, err)
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if p.Status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "api request failed",
			slog.Int("status", p.Status),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", ContentTypeProblem)
	w.WriteHeader(p.Status)
	if encErr := json.NewEncoder(w).Encode(p); encErr != nil {
		logger.WarnContext(ctx, "encoding problem response", slog.Any("error", encErr))
	}
}

// StatusOf maps an error from the service layer to an HTTP status. Data and
// programming faults such as ErrOutOfRange, ErrInvalidType and ErrMalformed
// are 500s.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func invalidParams(fields map[string]string) []InvalidParam {
	out := make([]InvalidParam, 0, len(fields))
	for name, reason := range fields {
		out = append(out, InvalidParam{Name: name, Reason: reason})
	}
	slices.SortFunc(out, func(a, b InvalidParam) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
