package classify

import (
	"strings"
	"testing"

	"city-explorer/internal/domain"
)

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestCategoryIcon(t *testing.T) {
	cases := []struct {
		category string
		want     string
	}{
		{"museum", "🏛️"},
		{"Art MUSEUM", "🏛️"},
		{"Café", "☕"},
		{"coffee shop", "☕"},
		{"city park", "🌳"},
		{"Nature reserve", "🌳"},
		{"museum café", "🏛️"},
		{"restaurant", "📍"},
		{"", "📍"},
	}
	for _, tc := range cases {
		if got := CategoryIcon(tc.category).Glyph; got != tc.want {
			t.Errorf("CategoryIcon(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}

	if CategoryIcon("museum").Asset != "svg-museum" {
		t.Fatalf("museum asset = %q, want svg-museum", CategoryIcon("museum").Asset)
	}
}

func TestColorVariant(t *testing.T) {
	if got := ColorVariant("museum", 2); got != domain.VariantBlue {
		t.Fatalf("museum = %q, want blue", got)
	}
	if got := ColorVariant("cafe", 0); got != domain.VariantOrange {
		t.Fatalf("cafe = %q, want orange", got)
	}
	if got := ColorVariant("park", 1); got != domain.VariantGreen {
		t.Fatalf("park = %q, want green", got)
	}

	want := []domain.Variant{domain.VariantBlue, domain.VariantOrange, domain.VariantGreen, domain.VariantBlue}
	for i, w := range want {
		if got := ColorVariant("shopping", i); got != w {
			t.Errorf("ColorVariant(shopping, %d) = %q, want %q", i, got, w)
		}
	}

	if got := ColorVariant("", -1); got != domain.VariantGreen {
		t.Fatalf("ColorVariant(\"\", -1) = %q, want green", got)
	}
	if ColorVariant("x", 7) != ColorVariant("x", 7) {
		t.Fatal("ColorVariant is not deterministic")
	}
}

func TestIndoorOutdoorLabel(t *testing.T) {
	cases := []struct {
		name string
		a    domain.ActivityRecord
		want string
	}{
		{"indoor wins over type", domain.ActivityRecord{Indoor: boolPtr(true), Type: "outdoor area"}, "Indoor"},
		{"indoor false", domain.ActivityRecord{Indoor: boolPtr(false), IsIndoor: boolPtr(true)}, "Outdoor"},
		{"isIndoor", domain.ActivityRecord{IsIndoor: boolPtr(true), Type: "outdoor"}, "Indoor"},
		{"type outdoor", domain.ActivityRecord{Type: "Outdoor Area"}, "Outdoor"},
		{"type indoor", domain.ActivityRecord{Type: "indoor pool"}, "Indoor"},
		{"empty", domain.ActivityRecord{}, ""},
	}
	for _, tc := range cases {
		if got := IndoorOutdoorLabel(tc.a); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestWeatherEmoji(t *testing.T) {
	if got := WeatherEmoji("Light RAIN"); got != "🌧️" {
		t.Fatalf("rain = %q", got)
	}
	if got := WeatherEmoji("Clear sky"); got != "☀️" {
		t.Fatalf("clear = %q", got)
	}
	if got := WeatherEmoji("lätt snö"); got != "❄️" {
		t.Fatalf("snö = %q", got)
	}
	if got := WeatherEmoji(""); got != "⛅" {
		t.Fatalf("default = %q", got)
	}
}

func TestFormatting(t *testing.T) {
	if got := FormatTemperature(floatPtr(15.6)); got != "16°C" {
		t.Fatalf("FormatTemperature(15.6) = %q, want 16°C", got)
	}
	if got := FormatTemperature(nil); got != "--°C" {
		t.Fatalf("FormatTemperature(nil) = %q, want --°C", got)
	}
	if got := FormatScore(floatPtr(4.7)); got != "5" {
		t.Fatalf("FormatScore(4.7) = %q, want 5", got)
	}
	if got := FormatScore(floatPtr(4.5)); got != "5" {
		t.Fatalf("FormatScore(4.5) = %q, want 5", got)
	}
	if got := FormatScore(nil); got != "" {
		t.Fatalf("FormatScore(nil) = %q, want empty", got)
	}
	if got := Round(-2.5); got != -2 {
		t.Fatalf("Round(-2.5) = %v, want -2", got)
	}
}

func TestFormatLargeAndNegativeValues(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{-1e20, "-100000000000000000000°C"},
		{-0.4, "0°C"},
		{-0.5, "0°C"},
		{-0.6, "-1°C"},
	}
	for _, tc := range cases {
		if got := FormatTemperature(floatPtr(tc.in)); got != tc.want {
			t.Errorf("FormatTemperature(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if got := FormatScore(floatPtr(9.3e18)); got != "9300000000000000000" {
		t.Fatalf("FormatScore(9.3e18) = %q", got)
	}

	got := FormatTemperature(floatPtr(1e300))
	if strings.HasPrefix(got, "-") || !strings.HasSuffix(got, "°C") || len(got) < 301 {
		t.Fatalf("FormatTemperature(1e300) = %.20s..., want a positive 301-digit value", got)
	}
}
