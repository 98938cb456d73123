package dto

import (
	"errors"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Probe and per-check statuses reported by the health endpoints.
const (
	StatusAlive    = "ok"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"

	CheckOK       = "ok"
	CheckDegraded = "degraded"
	CheckFailing  = "failing"
)

// LivenessResponse is the body of GET /health/live.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Status string        `json:"status"`
	Checks []CheckResult `json:"checks"`
}

// CheckResult is one dependency's line in a ReadinessResponse.
type CheckResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ToReadinessResponse summarises registry results, sorted by name. The
// instance is ready unless some check is failing; degraded checks are
// listed but do not count against it.
func ToReadinessResponse(results map[string]error) ReadinessResponse {
	resp := ReadinessResponse{Status: StatusReady, Checks: make([]CheckResult, 0, len(results))}

	for name, err := range results {
		c := CheckResult{Name: name, Status: CheckOK}
		switch {
		case err == nil:
		case errors.Is(err, ports.ErrDegraded):
			c.Status, c.Error = CheckDegraded, err.Error()
		default:
			c.Status, c.Error = CheckFailing, err.Error()
			resp.Status = StatusNotReady
		}
		resp.Checks = append(resp.Checks, c)
	}

	slices.SortFunc(resp.Checks, func(a, b CheckResult) int {
		return strings.Compare(a.Name, b.Name)
	})
	return resp
}
