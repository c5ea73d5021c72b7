package domain

import "strings"

// A non-empty, ordered set of category identifiers read from the UI at query time.
type CategoryFilter []string

// Build a filter from raw control values. Blank ids are dropped and
// duplicates collapse to their first occurrence.
func NewCategoryFilter(ids []string) (CategoryFilter, error) {
	seen := make(map[string]struct{}, len(ids))
	out := make(CategoryFilter, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	if len(out) == 0 {
		return nil, &ValidationError{
			Field:   "categories",
			Message: "Select at least one category.",
			Err:     ErrEmptyCategoryFilter,
		}
	}
	return out, nil
}

// Return the comma-joined form used in query strings.
func (f CategoryFilter) Joined() string { return strings.Join(f, ",") }
