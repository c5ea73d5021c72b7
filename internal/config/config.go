package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the explorer front-end.
type Config struct {
	APIBaseURL     string
	DefaultCity    string
	Categories     []string
	HTTPTimeout    time.Duration
	APIMaxAttempts int
	DiscardStale   bool
	InspectAddr    string
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	timeout, err := time.ParseDuration(Get("EXPLORER_HTTP_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: EXPLORER_HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("load config: EXPLORER_HTTP_TIMEOUT must be positive, got %s", timeout)
	}

	attempts, err := strconv.Atoi(Get("EXPLORER_API_MAX_ATTEMPTS", "1"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: EXPLORER_API_MAX_ATTEMPTS: %w", err)
	}
	if attempts < 1 || attempts > 10 {
		return Config{}, fmt.Errorf("load config: EXPLORER_API_MAX_ATTEMPTS must be between 1 and 10, got %d", attempts)
	}

	discard, err := strconv.ParseBool(Get("EXPLORER_DISCARD_STALE", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: EXPLORER_DISCARD_STALE: %w", err)
	}

	categories := SplitList(Get("EXPLORER_CATEGORIES", "museum,cafe,park"))
	if len(categories) == 0 {
		return Config{}, fmt.Errorf("load config: EXPLORER_CATEGORIES must name at least one category")
	}

	return Config{
		APIBaseURL:     strings.TrimRight(Get("EXPLORER_API_BASE_URL", "http://localhost:7000"), "/"),
		DefaultCity:    strings.TrimSpace(Get("EXPLORER_DEFAULT_CITY", "Stockholm")),
		Categories:     categories,
		HTTPTimeout:    timeout,
		APIMaxAttempts: attempts,
		DiscardStale:   discard,
		InspectAddr:    strings.TrimSpace(os.Getenv("EXPLORER_INSPECT_ADDR")),
	}, nil
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
