package rest

import (
	"context"
	"net/http"
	"time"
)

const checkTimeout = 3 * time.Second

// pinger is a dependency that can report whether it is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

// Check names a dependency checked by the readiness and health endpoints.
type Check struct {
	Name   string
	Pinger pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []Check
	version string
}

// NewHealthHandler creates a HealthHandler. Every check must pass for the service to be ready.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness endpoint. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness endpoint: 200 if every dependency answers, 503 naming
// the failing ones if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, resp := h.runChecks(r.Context())
	for name, c := range resp.Components {
		if c.Status == "ok" {
			delete(resp.Components, name)
		}
	}
	writeJSON(w, status, resp)
}

// Health reports every dependency with its ping latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, resp := h.runChecks(r.Context())
	resp.Version = h.version
	writeJSON(w, status, resp)
}

func (h *HealthHandler) runChecks(ctx context.Context) (int, HealthResponse) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Components: make(map[string]CompStatus, len(h.checks))}
	for _, c := range h.checks {
		start := time.Now()
		if err := c.Pinger.Ping(ctx); err != nil {
			resp.Components[c.Name] = CompStatus{Status: "down"}
			resp.Status = "down"
			continue
		}
		resp.Components[c.Name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	resp.Timestamp = time.Now()

	if resp.Status != "ok" {
		return http.StatusServiceUnavailable, resp
	}
	return http.StatusOK, resp
}
