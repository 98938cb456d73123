package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// HealthHandler serves the orchestrator probes. Neither probe touches a
// session.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler returns a HealthHandler reporting on registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness answers GET /health/live while the process can serve at all.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.LivenessResponse{Status: dto.StatusAlive})
}

// Readiness answers GET /health/ready with every check's result, and 503
// when any of them is failing.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if resp.Status != dto.StatusReady {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, resp)
}
