package ports

import "city-explorer/internal/domain"

// Port: the non-map part of the dashboard.
type View interface {
	SetLoading(visible bool)
	ClearCards()
	// Replace the card list. An empty slice renders an explicit "no results" entry.
	RenderCards(cards []domain.Card)
	// Replace the card list with a single error entry.
	RenderCardError(message string)
	RenderWeather(panel domain.WeatherPanel)
	// Show a blocking validation message; no query was issued.
	ShowValidation(message string)
}

// Port: the category checkboxes.
type CategoryControls interface {
	CheckedCategories() []string
}
