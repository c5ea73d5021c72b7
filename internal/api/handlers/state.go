package handlers

import (
	"net/http"

	"city-explorer/internal/api/dto"
	"city-explorer/internal/domain"
)

type SnapshotSource interface {
	Snapshot() domain.ViewSnapshot
}

type MapSource interface {
	Markers() []domain.Marker
	Viewport() (domain.Coordinates, int)
	GeoJSON() ([]byte, error)
}

type StateHandler struct {
	View SnapshotSource
	Map  MapSource
}

// State reports what the dashboard currently shows.
func (h *StateHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snap := h.View.Snapshot()
	center, zoom := h.Map.Viewport()

	res := dto.StateResponse{
		Loading:    snap.Loading,
		Cards:      make([]dto.CardResponse, 0, len(snap.Cards)),
		NoResults:  snap.NoResults,
		Error:      snap.Error,
		Validation: snap.Validation,
		Viewport:   dto.ViewportResponse{Lat: center.Lat, Lon: center.Lon, Zoom: zoom},
		Markers:    len(h.Map.Markers()),
	}
	if p := snap.Weather; p != nil {
		res.Weather = &dto.WeatherResponse{City: p.City, Temperature: p.Temperature, Condition: p.Condition, Emoji: p.Emoji}
	}
	for _, c := range snap.Cards {
		res.Cards = append(res.Cards, dto.CardResponse{
			Title:       c.Title,
			Icon:        c.Icon.Glyph,
			Variant:     string(c.Variant),
			Category:    c.Category,
			Environment: c.Environment,
			Score:       c.Score,
			Reason:      c.Reason,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Markers returns the map markers as a GeoJSON FeatureCollection.
func (h *StateHandler) Markers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := h.Map.GeoJSON()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "encode markers failed")
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
