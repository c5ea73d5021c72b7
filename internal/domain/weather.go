package domain

// Current conditions for one query cycle. Optional fields are nil when the
// upstream payload omitted them or carried a non-numeric value.
type WeatherRecord struct {
	City        string
	Temperature *float64
	Description string
	Coords      *Coordinates
}
