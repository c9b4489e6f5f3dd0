package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/paris-metro/planner/internal/metro"
	"github.com/paris-metro/planner/internal/models"
)

// HealthStore defines the store operations health reporting needs
type HealthStore interface {
	Ping(ctx context.Context) error
	LastImport(ctx context.Context) (*models.ImportInfo, error)
}

// HealthHandler handles HTTP requests for service health
type HealthHandler struct {
	store   HealthStore
	network *metro.Network
}

// NewHealthHandler creates a new handler with the given store
func NewHealthHandler(store HealthStore, network *metro.Network) *HealthHandler {
	return &HealthHandler{store: store, network: network}
}

// HealthResponse is the JSON response for GET /health
type HealthResponse struct {
	Status     string             `json:"status"`
	Database   string             `json:"database"`
	Stations   int                `json:"stations"`
	Trips      int                `json:"trips"`
	LastImport *models.ImportInfo `json:"lastImport,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
}

// GetHealth handles GET /health
// Reports database connectivity and the provenance of the loaded network.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ok",
		Database:  "connected",
		Stations:  len(h.network.Stations),
		Trips:     len(h.network.Trips),
		Timestamp: time.Now().UTC(),
	}

	if err := h.store.Ping(ctx); err != nil {
		response.Status = "error"
		response.Database = "disconnected"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(response)
		return
	}

	lastImport, err := h.store.LastImport(ctx)
	if err != nil {
		response.Status = "error"
		response.Database = "degraded"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(response)
		return
	}
	response.LastImport = lastImport

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
