package ports

import "city-explorer/internal/domain"

// Port: the interactive map used as a capability. Implementations are driven
// from the event loop only.
type MapWidget interface {
	AddMarker(m domain.Marker)
	// Remove a marker by identity. Unknown ids are ignored.
	RemoveMarker(id string)
	SetView(center domain.Coordinates, zoom int)
	// Recompute pixel dimensions after the surrounding layout changed.
	InvalidateSize()
}
