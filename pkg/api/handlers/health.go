package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/shelf-labs/shelf/pkg/shelf/store"
)

// HealthCheckTimeout is the maximum time allowed for readiness store pings.
const HealthCheckTimeout = 5 * time.Second

// HealthHandler handles health check endpoints.
//
// Health endpoints are unauthenticated and provide:
//   - Liveness probe: Is the server process running?
//   - Readiness probe: Is the store reachable?
type HealthHandler struct {
	store     store.Store
	startTime time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(st store.Store) *HealthHandler {
	return &HealthHandler{
		store:     st,
		startTime: time.Now(),
	}
}

// HealthResponse is the body of health endpoint responses.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Liveness handles GET /health - simple liveness probe.
// Always succeeds as long as the HTTP server is responsive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	WriteJSONOK(w, HealthResponse{
		Status:  "healthy",
		Service: "shelf",
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Readiness handles GET /health/ready - readiness probe.
// Returns 200 OK if the store answers a ping within the timeout.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), HealthCheckTimeout)
	defer cancel()

	if err := h.store.Healthcheck(ctx); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:  "unhealthy",
			Service: "shelf",
			Error:   "store unreachable",
		})
		return
	}

	WriteJSONOK(w, HealthResponse{
		Status:  "healthy",
		Service: "shelf",
	})
}
