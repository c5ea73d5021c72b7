package domain

// A suggested place as delivered by the recommendation endpoint.
// Every field is optional upstream; zero values mean "absent".
type ActivityRecord struct {
	Name      string
	Category  string
	Type      string
	Latitude  *float64
	Longitude *float64
	Indoor    *bool
	IsIndoor  *bool
}

// Return the activity position when both components are present and valid.
func (a ActivityRecord) Coordinates() (Coordinates, bool) {
	if a.Latitude == nil || a.Longitude == nil {
		return Coordinates{}, false
	}
	c := Coordinates{Lat: *a.Latitude, Lon: *a.Longitude}
	if !c.Valid() {
		return Coordinates{}, false
	}
	return c, true
}

// A scored activity suggestion tied to a location query and a category filter.
type RecommendationRecord struct {
	Activity ActivityRecord
	Score    *float64
	Reason   string
}
