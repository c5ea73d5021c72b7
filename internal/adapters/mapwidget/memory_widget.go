package mapwidget

import (
	"encoding/json"
	"sync"

	"city-explorer/internal/domain"
)

// Default viewport: central Stockholm.
var (
	DefaultCenter = domain.Coordinates{Lat: 59.3293, Lon: 18.0686}
	DefaultZoom   = 12
)

// MemoryWidget is a headless MapWidget. It records markers in insertion order,
// the current viewport and how often a relayout was forced. Reads are safe
// from any goroutine; writes come from the event loop.
type MemoryWidget struct {
	mu            sync.RWMutex
	markers       map[string]domain.Marker
	order         []string
	center        domain.Coordinates
	zoom          int
	invalidations int
}

func NewMemoryWidget() *MemoryWidget {
	return &MemoryWidget{
		markers: make(map[string]domain.Marker),
		center:  DefaultCenter,
		zoom:    DefaultZoom,
	}
}

func (w *MemoryWidget) AddMarker(m domain.Marker) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.markers[m.ID]; !ok {
		w.order = append(w.order, m.ID)
	}
	w.markers[m.ID] = m
}

func (w *MemoryWidget) RemoveMarker(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.markers[id]; !ok {
		return
	}
	delete(w.markers, id)
	for i, o := range w.order {
		if o == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

func (w *MemoryWidget) SetView(center domain.Coordinates, zoom int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.center = center
	w.zoom = zoom
}

func (w *MemoryWidget) InvalidateSize() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.invalidations++
}

// Markers returns a copy of the current markers in insertion order.
func (w *MemoryWidget) Markers() []domain.Marker {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]domain.Marker, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.markers[id])
	}
	return out
}

// Viewport returns the current center and zoom.
func (w *MemoryWidget) Viewport() (domain.Coordinates, int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.center, w.zoom
}

// Invalidations reports how many relayouts have been forced.
func (w *MemoryWidget) Invalidations() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.invalidations
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string            `json:"type"`
	Geometry   pointGeometry     `json:"geometry"`
	Properties featureProperties `json:"properties"`
}

type pointGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type featureProperties struct {
	ID        string `json:"id"`
	Popup     string `json:"popup"`
	Transient bool   `json:"transient"`
}

// GeoJSON encodes the current markers as a FeatureCollection of points.
func (w *MemoryWidget) GeoJSON() ([]byte, error) {
	markers := w.Markers()
	fc := featureCollection{Type: "FeatureCollection", Features: make([]feature, 0, len(markers))}
	for _, m := range markers {
		fc.Features = append(fc.Features, feature{
			Type:     "Feature",
			Geometry: pointGeometry{Type: "Point", Coordinates: m.Position.CoordsToList()},
			Properties: featureProperties{
				ID:        m.ID,
				Popup:     m.PopupHTML,
				Transient: m.Transient,
			},
		})
	}
	return json.Marshal(fc)
}
