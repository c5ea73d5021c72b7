package services

import (
	"city-explorer/internal/classify"
	"city-explorer/internal/domain"
)

const (
	unknownPlace      = "Unknown place"
	unknownCity       = "Unknown city"
	selectedLocation  = "Selected location"
	missingConditions = "—"
)

// BuildCards derives one card per record, in input order. The index drives
// color cycling for unmatched categories.
func BuildCards(recs []domain.RecommendationRecord) []domain.Card {
	cards := make([]domain.Card, 0, len(recs))
	for i, r := range recs {
		a := r.Activity

		title := a.Name
		if title == "" {
			title = unknownPlace
		}

		cards = append(cards, domain.Card{
			Title:       title,
			Icon:        classify.CategoryIcon(a.Category),
			Variant:     classify.ColorVariant(a.Category, i),
			Category:    a.Category,
			Environment: classify.IndoorOutdoorLabel(a),
			Score:       classify.FormatScore(r.Score),
			Reason:      r.Reason,
		})
	}
	return cards
}

// BuildWeatherPanel formats a weather record. The city falls back to the
// queried name, then to a placeholder for coordinate queries.
func BuildWeatherPanel(q domain.LocationQuery, w domain.WeatherRecord) domain.WeatherPanel {
	return domain.WeatherPanel{
		City:        displayCity(q, w),
		Temperature: classify.FormatTemperature(w.Temperature),
		Condition:   conditionText(w.Description),
		Emoji:       classify.WeatherEmoji(w.Description),
	}
}

func displayCity(q domain.LocationQuery, w domain.WeatherRecord) string {
	switch {
	case w.City != "":
		return w.City
	case q.IsCoordinate():
		return selectedLocation
	case q.City != "":
		return q.City
	default:
		return unknownCity
	}
}

func conditionText(desc string) string {
	if desc == "" {
		return missingConditions
	}
	return desc
}
