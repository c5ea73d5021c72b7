package terminal

import (
	"strings"
	"testing"
)

func TestCheckboxes(t *testing.T) {
	c := NewCheckboxes([]string{"museum", " cafe ", "park", "museum"})
	if got := strings.Join(c.CheckedCategories(), ","); got != "museum,cafe,park" {
		t.Fatalf("initial = %s", got)
	}

	c.Uncheck("museum")
	c.Uncheck("unknown")
	if got := strings.Join(c.CheckedCategories(), ","); got != "cafe,park" {
		t.Fatalf("after uncheck = %s", got)
	}

	c.Set(nil)
	if got := c.CheckedCategories(); len(got) != 0 {
		t.Fatalf("after Set(nil) = %v, want none", got)
	}

	c.Check("museum")
	c.Check("  ")
	if got := strings.Join(c.CheckedCategories(), ","); got != "museum" {
		t.Fatalf("after check = %s", got)
	}
}
