package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/paris-metro/planner/internal/metro"
	"github.com/paris-metro/planner/internal/models"
)

// StationHandler handles HTTP requests for station data
type StationHandler struct {
	network *metro.Network
}

// NewStationHandler creates a new handler serving the given network
func NewStationHandler(network *metro.Network) *StationHandler {
	return &StationHandler{network: network}
}

// StationsResponse is the JSON response for GET /api/stations
type StationsResponse struct {
	Stations []models.Station `json:"stations"`
	Count    int              `json:"count"`
}

// GetStations handles GET /api/stations
// The network is immutable after startup, so responses cache aggressively.
func (h *StationHandler) GetStations(w http.ResponseWriter, r *http.Request) {
	stations := make([]models.Station, 0, len(h.network.Stations))
	for _, st := range h.network.Stations {
		stations = append(stations, stationModel(st))
	}

	response := StationsResponse{
		Stations: stations,
		Count:    len(stations),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// SearchStations handles GET /api/stations/search?name=Chatelet
// Matching is by exact name. A station served by several lines has one
// record per line, so a single name can return multiple results.
func (h *StationHandler) SearchStations(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: "name parameter is required",
		})
		return
	}

	ids := h.network.FindByName(name)
	stations := make([]models.Station, 0, len(ids))
	for _, id := range ids {
		stations = append(stations, stationModel(h.network.Stations[id]))
	}

	response := StationsResponse{
		Stations: stations,
		Count:    len(stations),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func stationModel(st metro.Station) models.Station {
	return models.Station{
		ID:       st.ID,
		Line:     st.Line,
		Terminus: st.Terminus,
		Name:     st.Name,
	}
}
