package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/paris-metro/planner/internal/metro"
	"github.com/paris-metro/planner/internal/models"
)

// ErrorResponse is the JSON error response structure
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RouteHandler handles HTTP requests for route planning
type RouteHandler struct {
	network *metro.Network
}

// NewRouteHandler creates a new handler planning over the given network
func NewRouteHandler(network *metro.Network) *RouteHandler {
	return &RouteHandler{network: network}
}

// RouteResponse is the JSON response for GET /api/route
type RouteResponse struct {
	From       models.Station   `json:"from"`
	To         models.Station   `json:"to"`
	Time       models.TripTime  `json:"time"`
	Path       []models.Station `json:"path"`
	Transfers  []models.Station `json:"transfers"`
	Directions []models.Station `json:"directions"`
}

// GetRoute handles GET /api/route?from=La+Defense&to=Chatelet
// Both parameters are station names. When a name appears on several lines,
// every departure/arrival pairing is planned and the fastest one wins.
func (h *RouteHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))
	if from == "" || to == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: "from and to parameters are required",
		})
		return
	}

	departures := h.network.FindByName(from)
	if len(departures) == 0 {
		h.unknownStation(w, from)
		return
	}
	arrivals := h.network.FindByName(to)
	if len(arrivals) == 0 {
		h.unknownStation(w, to)
		return
	}

	itinerary, err := h.network.BestRoute(departures, arrivals)
	if err != nil {
		if errors.Is(err, metro.ErrNoRoute) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "No route between stations",
				Details: map[string]interface{}{
					"from": from,
					"to":   to,
				},
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: "Failed to plan route",
			Details: map[string]interface{}{
				"internal": err.Error(),
			},
		})
		return
	}

	// The network never changes while the server runs, so routes are as
	// cacheable as the station list.
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(h.routeResponse(itinerary))
}

func (h *RouteHandler) unknownStation(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: "Unknown station",
		Details: map[string]interface{}{
			"name": name,
		},
	})
}

func (h *RouteHandler) routeResponse(it *metro.Itinerary) RouteResponse {
	path := make([]models.Station, 0, len(it.Path))
	for _, id := range it.Path {
		path = append(path, stationModel(h.network.Stations[id]))
	}
	transfers := make([]models.Station, 0, len(it.Transfers))
	for _, st := range it.Transfers {
		transfers = append(transfers, stationModel(st))
	}
	directions := make([]models.Station, 0, len(it.Directions))
	for _, id := range it.Directions {
		directions = append(directions, stationModel(h.network.Stations[id]))
	}

	return RouteResponse{
		From:       stationModel(h.network.Stations[it.Start]),
		To:         stationModel(h.network.Stations[it.End]),
		Time:       models.TripTime{Minutes: it.Time.Minutes, Seconds: it.Time.Seconds},
		Path:       path,
		Transfers:  transfers,
		Directions: directions,
	}
}
