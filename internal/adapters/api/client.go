package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client implements WeatherProvider and RecommendationProvider against the
// dashboard's /api/v1 endpoints.
//
// It coordinates:
//   - URL construction (path escaping, query parameters)
//   - Optional retry with backoff for transient failures
//   - Tolerant decoding of loosely-typed JSON records
//
// The client is safe for concurrent use.
type Client struct {
	session     *http.Client
	baseURL     string
	maxAttempts int
	backoff     time.Duration
}

func NewClient(baseURL string, timeout time.Duration, maxAttempts int) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base url is empty")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("api base url %q: %w", baseURL, err)
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	client := &Client{
		session:     &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		maxAttempts: maxAttempts,
		backoff:     200 * time.Millisecond,
	}

	return client, nil
}
