package domain

import "errors"

var (
	ErrEmptyCity           = errors.New("empty city")
	ErrEmptyCategoryFilter = errors.New("empty category filter")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
)

// ValidationError blocks a query before any network call is made.
// Message is the text shown to the user.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }
