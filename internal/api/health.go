package api

import (
	"net/http"
	"time"

	"github.com/campuslaf/laf-backend/internal/api/respond"
	"github.com/campuslaf/laf-backend/internal/store"
)

// HealthHandler reports service and store health.
type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(s store.Store) *HealthHandler { return &HealthHandler{store: s} }

// CheckHealth GET /api/health
// Always returns 200; the body reports healthy/unhealthy based on a store
// ping.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if err := h.store.Ping(r.Context()); err != nil {
		status = "unhealthy"
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
