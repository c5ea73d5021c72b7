package ports

import (
	"context"

	"city-explorer/internal/domain"
)

// Contract for retrieving current weather for a location.
type WeatherProvider interface {
	// Return weather for a city name.
	WeatherByCity(ctx context.Context, city string) (domain.WeatherRecord, error)
	// Return weather for a coordinate pair. The city may be empty.
	WeatherByCoordinates(ctx context.Context, c domain.Coordinates) (domain.WeatherRecord, error)
}
