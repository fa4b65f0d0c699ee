package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/solrun/vegakort/pkg/integrations"
	"github.com/solrun/vegakort/pkg/roadgraph"
)

// nearestRoadResponse is the wire shape of a nearest-edge lookup.
type nearestRoadResponse struct {
	U        [2]float64         `json:"u"`
	V        [2]float64         `json:"v"`
	RoadType string             `json:"road_type"`
	Length   float64            `json:"length"`
	Traffic  *roadgraph.Traffic `json:"traffic,omitempty"`
}

func (s *Server) handleNearestRoad(w http.ResponseWriter, r *http.Request) {
	x, okX := queryFloat(r, "x")
	y, okY := queryFloat(r, "y")
	if !okX || !okY {
		httpError(w, http.StatusBadRequest, "x and y query parameters are required")
		return
	}

	e, err := s.graph.ClosestRoad(orb.Point{x, y})
	if errors.Is(err, roadgraph.ErrNoEdges) {
		httpError(w, http.StatusNotFound, "graph has no edges")
		return
	}
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, nearestRoadResponse{
		U:        [2]float64{e.U[0], e.U[1]},
		V:        [2]float64{e.V[0], e.V[1]},
		RoadType: e.RoadType,
		Length:   e.Length,
		Traffic:  e.Traffic,
	})
}

func (s *Server) handleRoadTypes(w http.ResponseWriter, r *http.Request) {
	counts := make(map[string]int)
	for _, t := range s.graph.RoadTypes() {
		counts[t]++
	}
	writeJSON(w, counts)
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	if s.weather == nil {
		httpError(w, http.StatusServiceUnavailable, "weather lookup is not configured")
		return
	}
	lat, okLat := queryFloat(r, "lat")
	lon, okLon := queryFloat(r, "lon")
	if !okLat || !okLon {
		httpError(w, http.StatusBadRequest, "lat and lon query parameters are required")
		return
	}

	obs, err := s.weather.ClosestObservation(r.Context(), lat, lon)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, obs)
}

func (s *Server) handleNearestCamera(w http.ResponseWriter, r *http.Request) {
	if s.cameras == nil {
		httpError(w, http.StatusServiceUnavailable, "camera lookup is not configured")
		return
	}
	lat, okLat := queryFloat(r, "lat")
	lon, okLon := queryFloat(r, "lon")
	if !okLat || !okLon {
		httpError(w, http.StatusBadRequest, "lat and lon query parameters are required")
		return
	}

	cam, err := s.cameras.ClosestCamera(r.Context(), lat, lon)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, cam)
}

func queryFloat(r *http.Request, key string) (float64, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// serviceError maps integration failures to HTTP statuses.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, integrations.ErrNotFound):
		httpError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, integrations.ErrNetwork):
		httpError(w, http.StatusBadGateway, err.Error())
	default:
		httpError(w, http.StatusInternalServerError, err.Error())
	}
}
