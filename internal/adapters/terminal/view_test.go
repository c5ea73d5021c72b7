package terminal

import (
	"bytes"
	"strings"
	"testing"

	"city-explorer/internal/domain"
)

func TestViewRendering(t *testing.T) {
	var out bytes.Buffer
	v := NewView(&out)

	v.ShowValidation("Please enter a city name.")
	v.SetLoading(true)
	if s := v.Snapshot(); !s.Loading || s.Validation != "" {
		t.Fatalf("snapshot = %+v, want loading with validation cleared", s)
	}

	v.RenderWeather(domain.WeatherPanel{City: "Stockholm", Temperature: "16°C", Condition: "Clear sky", Emoji: "☀️"})
	v.RenderCards([]domain.Card{{
		Title:       "City Museum",
		Icon:        domain.Icon{Glyph: "🏛️"},
		Category:    "museum",
		Environment: "Indoor",
		Score:       "5",
		Reason:      "Great exhibits",
	}})
	v.SetLoading(false)

	text := out.String()
	for _, want := range []string{"Stockholm  16°C  Clear sky", "1. 🏛️ City Museum [museum] [Indoor]  5 ⭐", "Great exhibits"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}

	s := v.Snapshot()
	if s.Loading || len(s.Cards) != 1 || s.Weather.City != "Stockholm" || s.NoResults {
		t.Fatalf("snapshot = %+v", s)
	}
}

func TestViewEmptyAndError(t *testing.T) {
	var out bytes.Buffer
	v := NewView(&out)

	v.RenderCards(nil)
	if s := v.Snapshot(); !s.NoResults {
		t.Fatal("NoResults not set for empty list")
	}
	if !strings.Contains(out.String(), "No recommendations found") {
		t.Fatalf("output = %q", out.String())
	}

	v.RenderCardError("Could not fetch data: 500 Internal Server Error")
	s := v.Snapshot()
	if s.NoResults || s.Error == "" || len(s.Cards) != 0 {
		t.Fatalf("snapshot = %+v", s)
	}

	v.ClearCards()
	if s := v.Snapshot(); s.Error != "" {
		t.Fatalf("Error = %q after ClearCards", s.Error)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	v := NewView(nil)
	v.RenderWeather(domain.WeatherPanel{City: "Oslo"})
	v.RenderCards([]domain.Card{{Title: "A"}})

	s := v.Snapshot()
	s.Weather.City = "changed"
	s.Cards[0].Title = "changed"

	again := v.Snapshot()
	if again.Weather.City != "Oslo" || again.Cards[0].Title != "A" {
		t.Fatalf("snapshot aliases view state: %+v", again)
	}
}
