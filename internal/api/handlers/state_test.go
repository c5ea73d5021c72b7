package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"city-explorer/internal/api/dto"
	"city-explorer/internal/domain"
)

type staticView domain.ViewSnapshot

func (v staticView) Snapshot() domain.ViewSnapshot { return domain.ViewSnapshot(v) }

type staticMap struct {
	markers []domain.Marker
	center  domain.Coordinates
	zoom    int
}

func (m staticMap) Markers() []domain.Marker            { return m.markers }
func (m staticMap) Viewport() (domain.Coordinates, int) { return m.center, m.zoom }
func (m staticMap) GeoJSON() ([]byte, error) {
	return []byte(`{"type":"FeatureCollection","features":[]}`), nil
}

func TestStateFromDomainSnapshot(t *testing.T) {
	h := &StateHandler{
		View: staticView{
			Loading:    true,
			Weather:    &domain.WeatherPanel{City: "Lund", Temperature: "7°C"},
			Cards:      []domain.Card{{Title: "Botanical Garden", Variant: domain.VariantGreen, Environment: "Outdoor"}},
			Validation: "",
		},
		Map: staticMap{
			markers: []domain.Marker{{ID: "a"}, {ID: "b"}},
			center:  domain.Coordinates{Lat: 55.7, Lon: 13.19},
			zoom:    12,
		},
	}

	rec := httptest.NewRecorder()
	h.State(rec, httptest.NewRequest(http.MethodGet, "/state", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.StateResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Loading || res.Weather.City != "Lund" || res.Markers != 2 || res.Viewport.Lat != 55.7 {
		t.Fatalf("state = %+v", res)
	}
	if len(res.Cards) != 1 || res.Cards[0].Variant != "green" || res.Cards[0].Environment != "Outdoor" {
		t.Fatalf("cards = %+v", res.Cards)
	}
}

func TestStateEmptyCardsEncodeAsArray(t *testing.T) {
	h := &StateHandler{View: staticView{}, Map: staticMap{}}

	rec := httptest.NewRecorder()
	h.State(rec, httptest.NewRequest(http.MethodGet, "/state", nil))

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(raw["cards"]) != "[]" || string(raw["weather"]) != "null" {
		t.Fatalf("cards = %s weather = %s", raw["cards"], raw["weather"])
	}
}
