package services

import (
	"fmt"
	"html"
	"time"

	"city-explorer/internal/classify"
	"city-explorer/internal/domain"
	"city-explorer/internal/platform/loop"
	"city-explorer/internal/ports"

	"github.com/google/uuid"
)

const (
	TransientMarkerTTL = 3000 * time.Millisecond
	RelayoutDelay      = 50 * time.Millisecond
	ResultZoom         = 12
)

// MapSync owns the marker layer and the viewport of one map widget.
// Layer markers are replaced wholesale per result set; transient markers are
// tracked separately and only ever removed by their own expiry task.
type MapSync struct {
	widget ports.MapWidget
	loop   loop.Scheduler
	layer  []string
}

func NewMapSync(widget ports.MapWidget, l loop.Scheduler) *MapSync {
	return &MapSync{widget: widget, loop: l}
}

// ReplaceMarkers clears the layer, then adds one marker per geolocated result.
// Results without coordinates are skipped. Returns the number of markers added.
func (m *MapSync) ReplaceMarkers(results []domain.RecommendationRecord) int {
	for _, id := range m.layer {
		m.widget.RemoveMarker(id)
	}
	m.layer = m.layer[:0]

	for _, r := range results {
		pos, ok := r.Activity.Coordinates()
		if !ok {
			continue
		}

		id := uuid.NewString()
		m.widget.AddMarker(domain.Marker{
			ID:        id,
			Position:  pos,
			PopupHTML: popupHTML(r),
		})
		m.layer = append(m.layer, id)
	}

	return len(m.layer)
}

// LayerSize reports how many result markers are on the map.
func (m *MapSync) LayerSize() int { return len(m.layer) }

func popupHTML(r domain.RecommendationRecord) string {
	name := r.Activity.Name
	if name == "" {
		name = "Activity"
	}

	s := "<b>" + html.EscapeString(name) + "</b>"
	if r.Activity.Category != "" {
		s += "<br>" + html.EscapeString(r.Activity.Category)
	}
	if score := classify.FormatScore(r.Score); score != "" {
		s += "<br>Score: " + score
	}
	return s
}

// CenterOn moves the viewport to c at the result zoom level.
func (m *MapSync) CenterOn(c domain.Coordinates) {
	m.widget.SetView(c, ResultZoom)
}

// CenterOnFirstGeolocated recenters on the first result with coordinates.
// The viewport is unchanged when there is none.
func (m *MapSync) CenterOnFirstGeolocated(results []domain.RecommendationRecord) bool {
	for _, r := range results {
		if pos, ok := r.Activity.Coordinates(); ok {
			m.CenterOn(pos)
			return true
		}
	}
	return false
}

// PlaceTransientMarker adds a marker now and removes it after ttl, whatever
// happens to the layer meanwhile.
func (m *MapSync) PlaceTransientMarker(c domain.Coordinates, label string, ttl time.Duration) string {
	id := uuid.NewString()
	m.widget.AddMarker(domain.Marker{
		ID:        id,
		Position:  c,
		PopupHTML: html.EscapeString(label),
		Transient: true,
	})

	m.loop.AfterFunc(ttl, func() { m.widget.RemoveMarker(id) })
	return id
}

// ScheduleRelayout forces the widget to recompute its size after delay.
func (m *MapSync) ScheduleRelayout(delay time.Duration) {
	m.loop.AfterFunc(delay, m.widget.InvalidateSize)
}

func clickLabel(c domain.Coordinates) string {
	return fmt.Sprintf("Selected point %s", c)
}
