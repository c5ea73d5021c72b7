package domain

// Presentation models handed to the view and map ports.

type Icon struct {
	Glyph string
	Asset string
}

type Variant string

const (
	VariantBlue   Variant = "blue"
	VariantOrange Variant = "orange"
	VariantGreen  Variant = "green"
)

// One rendered recommendation.
type Card struct {
	Title       string
	Icon        Icon
	Variant     Variant
	Category    string
	Environment string
	Score       string
	Reason      string
}

type WeatherPanel struct {
	City        string
	Temperature string
	Condition   string
	Emoji       string
}

// A point annotation on the map. PopupHTML is already escaped.
type Marker struct {
	ID        string
	Position  Coordinates
	PopupHTML string
	Transient bool
}

// ViewSnapshot is the visible state of the dashboard outside the map.
type ViewSnapshot struct {
	Loading    bool
	Weather    *WeatherPanel
	Cards      []Card
	NoResults  bool
	Error      string
	Validation string
}
