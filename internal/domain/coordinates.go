package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Report whether both components are finite and inside the WGS84 range.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func (c Coordinates) String() string { return fmt.Sprintf("(%.4f, %.4f)", c.Lat, c.Lon) }

// Return coordinates as [lon, lat] for GeoJSON compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }
