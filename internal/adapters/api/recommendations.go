package api

import (
	"context"

	"city-explorer/internal/domain"
	"city-explorer/internal/platform/obs"
)

// Recommendations calls GET /api/v1/recommendations?city=&categories=.
func (c *Client) Recommendations(
	ctx context.Context,
	city string,
	filter domain.CategoryFilter,
) (_ []domain.RecommendationRecord, err error) {
	defer obs.Time(ctx, "api.Recommendations")(&err)

	const op = "recommendations by city"

	params := map[string]string{
		"city":       city,
		"categories": filter.Joined(),
	}

	v, err := c.getJSON(ctx, op, "/api/v1/recommendations", params)
	if err != nil {
		return nil, err
	}

	recs, err := decodeRecommendations(v)
	if err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	return recs, nil
}

// RecommendationsByCoordinates calls
// GET /api/v1/recommendations/coordinates?lat=&lon=&categories=.
func (c *Client) RecommendationsByCoordinates(
	ctx context.Context,
	coords domain.Coordinates,
	filter domain.CategoryFilter,
) (_ []domain.RecommendationRecord, err error) {
	defer obs.Time(ctx, "api.RecommendationsByCoordinates")(&err)

	const op = "recommendations by coordinates"

	params := coordinateParams(coords)
	params["categories"] = filter.Joined()

	v, err := c.getJSON(ctx, op, "/api/v1/recommendations/coordinates", params)
	if err != nil {
		return nil, err
	}

	recs, err := decodeRecommendations(v)
	if err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	return recs, nil
}
