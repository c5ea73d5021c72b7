package domain

import "strings"

// A user-specified place, either by city name or by coordinate pair.
// Exactly one of City or Coords is set; values are constructed once per
// user action and never mutated.
type LocationQuery struct {
	City   string
	Coords *Coordinates
}

func CityQuery(city string) LocationQuery {
	return LocationQuery{City: strings.TrimSpace(city)}
}

func CoordinateQuery(c Coordinates) LocationQuery {
	return LocationQuery{Coords: &c}
}

func (q LocationQuery) IsCoordinate() bool { return q.Coords != nil }

// Validate rejects empty city names and out-of-range coordinates.
func (q LocationQuery) Validate() error {
	if q.Coords != nil {
		if !q.Coords.Valid() {
			return &ValidationError{Field: "coordinates", Message: "Invalid coordinates " + q.Coords.String(), Err: ErrInvalidCoordinates}
		}
		return nil
	}
	if strings.TrimSpace(q.City) == "" {
		return &ValidationError{Field: "city", Message: "Please enter a city name.", Err: ErrEmptyCity}
	}
	return nil
}

func (q LocationQuery) String() string {
	if q.Coords != nil {
		return q.Coords.String()
	}
	return q.City
}
