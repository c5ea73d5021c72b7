package ports

import (
	"context"

	"city-explorer/internal/domain"
)

// Contract for retrieving scored activity suggestions.
// Results are returned in upstream order.
type RecommendationProvider interface {
	Recommendations(ctx context.Context, city string, filter domain.CategoryFilter) ([]domain.RecommendationRecord, error)
	RecommendationsByCoordinates(ctx context.Context, c domain.Coordinates, filter domain.CategoryFilter) ([]domain.RecommendationRecord, error)
}
