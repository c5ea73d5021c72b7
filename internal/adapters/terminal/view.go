package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"city-explorer/internal/domain"
)

const noResultsText = "No recommendations found"

// View renders the dashboard as text lines and keeps a snapshot of what is
// currently shown. Render calls come from the event loop; Snapshot may be
// called from any goroutine.
type View struct {
	mu    sync.RWMutex
	out   io.Writer
	state domain.ViewSnapshot
}

func NewView(out io.Writer) *View {
	return &View{out: out}
}

func (v *View) printf(format string, args ...any) {
	if v.out == nil {
		return
	}
	fmt.Fprintf(v.out, format, args...)
}

func (v *View) SetLoading(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if visible {
		v.state.Validation = ""
		v.printf("loading...\n")
	}
	v.state.Loading = visible
}

func (v *View) ClearCards() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Cards = nil
	v.state.NoResults = false
	v.state.Error = ""
}

func (v *View) RenderCards(cards []domain.Card) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Cards = append([]domain.Card(nil), cards...)
	v.state.NoResults = len(cards) == 0
	v.state.Error = ""

	if len(cards) == 0 {
		v.printf("  %s\n", noResultsText)
		return
	}

	for i, c := range cards {
		var b strings.Builder
		fmt.Fprintf(&b, "  %d. %s %s", i+1, c.Icon.Glyph, c.Title)
		if c.Category != "" {
			fmt.Fprintf(&b, " [%s]", c.Category)
		}
		if c.Environment != "" {
			fmt.Fprintf(&b, " [%s]", c.Environment)
		}
		if c.Score != "" {
			fmt.Fprintf(&b, "  %s ⭐", c.Score)
		}
		v.printf("%s\n", b.String())
		if c.Reason != "" {
			v.printf("     %s\n", c.Reason)
		}
	}
}

func (v *View) RenderCardError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Cards = nil
	v.state.NoResults = false
	v.state.Error = message
	v.printf("  error: %s\n", message)
}

func (v *View) RenderWeather(p domain.WeatherPanel) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Weather = &p
	v.printf("%s  %s  %s  %s\n", p.City, p.Temperature, p.Condition, p.Emoji)
}

func (v *View) ShowValidation(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Validation = message
	v.printf("! %s\n", message)
}

// Snapshot returns a copy of the current visible state.
func (v *View) Snapshot() domain.ViewSnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	s := v.state
	s.Cards = append([]domain.Card(nil), v.state.Cards...)
	if v.state.Weather != nil {
		w := *v.state.Weather
		s.Weather = &w
	}
	return s
}
