package services

import (
	"city-explorer/internal/domain"
	"city-explorer/internal/ports"
)

// CategoryFilterReader reads the checked categories fresh on every query.
type CategoryFilterReader struct {
	controls ports.CategoryControls
}

func NewCategoryFilterReader(controls ports.CategoryControls) *CategoryFilterReader {
	return &CategoryFilterReader{controls: controls}
}

// Read returns the current filter, or a ValidationError when nothing is checked.
func (r *CategoryFilterReader) Read() (domain.CategoryFilter, error) {
	return domain.NewCategoryFilter(r.controls.CheckedCategories())
}
