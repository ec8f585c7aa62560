package http

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"foamcli/pkg/contracts"
)

// HealthHandler serves liveness and version information.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

// Health responds with service status, version, and uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{
		"status":  "ok",
		"version": contracts.Version,
		"uptime":  time.Since(h.startedAt).String(),
	})
}
