// Package classify derives presentation attributes from recommendation records.
// All functions are total and pure.
package classify

import (
	"math"
	"strconv"
	"strings"

	"city-explorer/internal/domain"
)

type categoryStyle struct {
	keywords []string
	icon     domain.Icon
	variant  domain.Variant
}

// First match wins; "coffee museum" is a museum.
var categoryTable = []categoryStyle{
	{
		keywords: []string{"museum"},
		icon:     domain.Icon{Glyph: "🏛️", Asset: "svg-museum"},
		variant:  domain.VariantBlue,
	},
	{
		keywords: []string{"cafe", "café", "coffee"},
		icon:     domain.Icon{Glyph: "☕", Asset: "svg-cafe"},
		variant:  domain.VariantOrange,
	},
	{
		keywords: []string{"park", "nature"},
		icon:     domain.Icon{Glyph: "🌳", Asset: "svg-park"},
		variant:  domain.VariantGreen,
	},
}

var defaultIcon = domain.Icon{Glyph: "📍", Asset: "svg-pin"}

var variantCycle = []domain.Variant{domain.VariantBlue, domain.VariantOrange, domain.VariantGreen}

func lookup(category string) (categoryStyle, bool) {
	c := strings.ToLower(category)
	if c == "" {
		return categoryStyle{}, false
	}
	for _, s := range categoryTable {
		for _, k := range s.keywords {
			if strings.Contains(c, k) {
				return s, true
			}
		}
	}
	return categoryStyle{}, false
}

// CategoryIcon maps a category to its icon, defaulting to a generic pin.
func CategoryIcon(category string) domain.Icon {
	if s, ok := lookup(category); ok {
		return s.icon
	}
	return defaultIcon
}

// ColorVariant maps a category to its color. Unmatched categories cycle
// through the variants by list position.
func ColorVariant(category string, index int) domain.Variant {
	if s, ok := lookup(category); ok {
		return s.variant
	}
	i := index % len(variantCycle)
	if i < 0 {
		i += len(variantCycle)
	}
	return variantCycle[i]
}

const (
	LabelIndoor  = "Indoor"
	LabelOutdoor = "Outdoor"
)

// IndoorOutdoorLabel resolves, in order: indoor flag, isIndoor flag, then a
// substring hint in the free-text type. Returns "" when nothing applies.
func IndoorOutdoorLabel(a domain.ActivityRecord) string {
	if a.Indoor != nil {
		return boolLabel(*a.Indoor)
	}
	if a.IsIndoor != nil {
		return boolLabel(*a.IsIndoor)
	}

	t := strings.ToLower(a.Type)
	switch {
	case strings.Contains(t, "indoor"):
		return LabelIndoor
	case strings.Contains(t, "outdoor"):
		return LabelOutdoor
	default:
		return ""
	}
}

func boolLabel(indoor bool) string {
	if indoor {
		return LabelIndoor
	}
	return LabelOutdoor
}

// WeatherEmoji picks a glyph for a free-text weather description.
func WeatherEmoji(description string) string {
	d := strings.ToLower(description)
	switch {
	case strings.Contains(d, "rain") || strings.Contains(d, "regn"):
		return "🌧️"
	case strings.Contains(d, "snow") || strings.Contains(d, "snö"):
		return "❄️"
	case strings.Contains(d, "cloud") || strings.Contains(d, "moln"):
		return "☁️"
	case strings.Contains(d, "clear") || strings.Contains(d, "klart"):
		return "☀️"
	case strings.Contains(d, "storm") || strings.Contains(d, "åska"):
		return "⛈️"
	default:
		return "⛅"
	}
}

// Round rounds half up, so 4.5 becomes 5 and -2.5 becomes -2. The result
// stays a float so very large magnitudes do not overflow an int.
func Round(x float64) float64 {
	// + 0 folds -0 into 0
	return math.Floor(x+0.5) + 0
}

func formatRounded(x float64) string {
	return strconv.FormatFloat(Round(x), 'f', 0, 64)
}

// FormatScore renders a score as a rounded integer, or "" when absent.
func FormatScore(score *float64) string {
	if score == nil {
		return ""
	}
	return formatRounded(*score)
}

// FormatTemperature renders a Celsius value as "16°C", or "--°C" when absent.
func FormatTemperature(t *float64) string {
	if t == nil {
		return "--°C"
	}
	return formatRounded(*t) + "°C"
}
