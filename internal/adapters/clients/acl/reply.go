// Package acl is the anti-corruption layer between the seed catalogue's
// wire format and the domain. The catalogue's payload translation lives in
// acl/seed; this package owns the HTTP exchange and maps catalogue replies
// onto domain errors.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
)

// maxReplyBytes caps how much of a catalogue reply is read.
const maxReplyBytes = 1 << 20

// StatusError is a reply from the catalogue with an unexpected status.
// It unwraps to the domain sentinel the status maps to.
type StatusError struct {
	Status int
	Detail string
	kind   error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("seed catalogue replied %d: %s", e.Status, e.Detail)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

// catalogueProblem accepts both the RFC 9457 invalid-params member and the
// older errors/location shape some catalogue deployments still emit.
type catalogueProblem struct {
	Detail        string `json:"detail"`
	InvalidParams []struct {
		Name   string `json:"name"`
		Reason string `json:"reason"`
	} `json:"invalid-params"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

func (p catalogueProblem) fields() map[string]string {
	fields := make(map[string]string, len(p.InvalidParams)+len(p.Errors))
	for _, ip := range p.InvalidParams {
		fields[ip.Name] = ip.Reason
	}
	for _, e := range p.Errors {
		fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
	}
	return fields
}

// FromResponse converts a catalogue reply into a domain error. A 400 or
// 422 carrying field problems becomes a *domain.ValidationError; every other
// status becomes a *StatusError.
func FromResponse(resp *http.Response) error {
	p := readProblem(resp)
	detail := p.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	var kind error
	switch code := resp.StatusCode; {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if fields := p.fields(); len(fields) > 0 {
			return &domain.ValidationError{Fields: fields}
		}
		kind = domain.ErrValidation
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		kind = domain.ErrForbidden
	case code == http.StatusNotFound:
		kind = domain.ErrNotFound
	case code == http.StatusConflict:
		kind = domain.ErrConflict
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		kind = domain.ErrUnavailable
	}
	return &StatusError{Status: resp.StatusCode, Detail: detail, kind: kind}
}

// readProblem decodes a problem+json body. Anything else yields a zero
// value.
func readProblem(resp *http.Response) catalogueProblem {
	var p catalogueProblem
	if resp.Body == nil {
		return p
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mt != "application/problem+json" {
		return p
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxReplyBytes)).Decode(&p)
	return p
}
