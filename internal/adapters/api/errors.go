package api

import (
	"fmt"
	"net/http"
)

// HTTPStatusError is a non-2xx response. Error returns the status text,
// e.g. "500 Internal Server Error".
type HTTPStatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *HTTPStatusError) Error() string {
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("%d %s", e.Code, http.StatusText(e.Code))
}

// NetworkError is a transport failure: the request never produced a response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("%s: network error: %v", e.Op, e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError is a response body that is not the JSON shape expected.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s: invalid response: %v", e.Op, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }
