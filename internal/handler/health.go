package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/forgo/gambit/internal/database"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	db      database.Database
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db database.Database, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		version: version,
	}
}

// HealthResponse reports service and dependency status
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version,omitempty"`
	Database string `json:"database"`
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:   "ok",
		Version:  h.version,
		Database: "ok",
	}

	status := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		response.Status = "degraded"
		response.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	WriteJSON(w, status, response)
}
