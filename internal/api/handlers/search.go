package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"city-explorer/internal/api/dto"
	"city-explorer/internal/domain"
	"city-explorer/internal/platform/loop"
)

type Searcher interface {
	Search(city string) error
	SearchAt(c domain.Coordinates) error
}

type SearchHandler struct {
	Ctrl Searcher
	Loop loop.Scheduler
}

// Search queues a query on the event loop. The outcome is observed via /state.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SearchRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	hasCoords := req.Lat != nil || req.Lon != nil
	if hasCoords && strings.TrimSpace(req.City) != "" {
		writeError(w, r, http.StatusBadRequest, "give either city or lat and lon, not both")
		return
	}

	var run func() error
	switch {
	case hasCoords:
		if req.Lat == nil || req.Lon == nil {
			writeError(w, r, http.StatusBadRequest, "lat and lon must be given together")
			return
		}
		c := domain.Coordinates{Lat: *req.Lat, Lon: *req.Lon}
		if !c.Valid() {
			writeError(w, r, http.StatusBadRequest, "invalid coordinates")
			return
		}
		run = func() error { return h.Ctrl.SearchAt(c) }
	default:
		city := strings.TrimSpace(req.City)
		if city == "" {
			writeError(w, r, http.StatusBadRequest, "city is required")
			return
		}
		run = func() error { return h.Ctrl.Search(city) }
	}

	h.Loop.Post(func() {
		if err := run(); err != nil {
			log.Printf("search rejected: %v", err)
		}
	})

	writeJSON(w, r, http.StatusAccepted, dto.SearchResponse{Status: "queued"})
}
