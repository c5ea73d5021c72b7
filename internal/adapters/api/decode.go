package api

import (
	"errors"
	"fmt"

	"city-explorer/internal/domain"
	"city-explorer/internal/record"
)

// Candidate keys per logical field, most specific first.
var (
	weatherCityKeys        = []string{"city", "name"}
	weatherTemperatureKeys = []string{"temperature", "temp", "tempC"}
	weatherDescriptionKeys = []string{"description", "condition", "weatherDescription"}
	latitudeKeys           = []string{"latitude", "lat"}
	longitudeKeys          = []string{"longitude", "lon", "lng"}

	activityNameKeys     = []string{"name", "title"}
	activityCategoryKeys = []string{"category", "type", "tag"}
	activityTypeKeys     = []string{"type", "environment", "placeType"}
	scoreKeys            = []string{"score", "rating", "matchScore"}
	reasonKeys           = []string{"reason", "description", "why"}
)

func coordinates(r record.Record) *domain.Coordinates {
	lat, okLat := record.Number(r, latitudeKeys)
	lon, okLon := record.Number(r, longitudeKeys)
	if !okLat || !okLon {
		return nil
	}
	c := domain.Coordinates{Lat: lat, Lon: lon}
	if !c.Valid() {
		return nil
	}
	return &c
}

func asRecord(v any) (record.Record, bool) {
	m, ok := v.(map[string]any)
	return record.Record(m), ok
}

func decodeWeather(v any) (domain.WeatherRecord, error) {
	r, ok := asRecord(v)
	if !ok {
		return domain.WeatherRecord{}, fmt.Errorf("weather: expected JSON object, got %T", v)
	}

	return domain.WeatherRecord{
		City:        record.String(r, weatherCityKeys, ""),
		Temperature: record.NumberPtr(r, weatherTemperatureKeys),
		Description: record.String(r, weatherDescriptionKeys, ""),
		Coords:      coordinates(r),
	}, nil
}

func decodeActivity(r record.Record) domain.ActivityRecord {
	return domain.ActivityRecord{
		Name:      record.String(r, activityNameKeys, ""),
		Category:  record.String(r, activityCategoryKeys, ""),
		Type:      record.String(r, activityTypeKeys, ""),
		Latitude:  record.NumberPtr(r, latitudeKeys),
		Longitude: record.NumberPtr(r, longitudeKeys),
		Indoor:    record.BoolPtr(r, []string{"indoor"}),
		IsIndoor:  record.BoolPtr(r, []string{"isIndoor"}),
	}
}

// decodeRecommendations accepts an array of either nested
// {activity, score, reason} objects or flat activity objects. A JSON null
// decodes as an empty list; non-object elements are skipped.
func decodeRecommendations(v any) ([]domain.RecommendationRecord, error) {
	if v == nil {
		return []domain.RecommendationRecord{}, nil
	}

	items, ok := v.([]any)
	if !ok {
		return nil, errors.New("recommendations: expected JSON array")
	}

	out := make([]domain.RecommendationRecord, 0, len(items))
	for _, item := range items {
		r, ok := asRecord(item)
		if !ok {
			continue
		}

		activity := record.Nested(r, "activity")
		if activity == nil {
			activity = r
		}

		out = append(out, domain.RecommendationRecord{
			Activity: decodeActivity(activity),
			Score:    record.NumberPtr(r, scoreKeys),
			Reason:   record.String(r, reasonKeys, ""),
		})
	}

	return out, nil
}
