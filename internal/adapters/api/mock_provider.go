package api

import (
	"context"
	"fmt"
	"sync"

	"city-explorer/internal/domain"
)

// MockProvider serves canned weather and recommendations keyed by city name,
// or by the Coordinates.String() form for coordinate lookups.
type MockProvider struct {
	mu             sync.Mutex
	Weather        map[string]domain.WeatherRecord
	Recs           map[string][]domain.RecommendationRecord
	WeatherErr     map[string]error
	RecsErr        map[string]error
	Calls          []string
	LastCategories domain.CategoryFilter
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		Weather:    make(map[string]domain.WeatherRecord),
		Recs:       make(map[string][]domain.RecommendationRecord),
		WeatherErr: make(map[string]error),
		RecsErr:    make(map[string]error),
	}
}

func (p *MockProvider) record(call string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls = append(p.Calls, call)
}

// CallCount returns the number of provider calls made so far.
func (p *MockProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Calls)
}

func (p *MockProvider) weather(key string) (domain.WeatherRecord, error) {
	if err := p.WeatherErr[key]; err != nil {
		return domain.WeatherRecord{}, err
	}
	w, ok := p.Weather[key]
	if !ok {
		return domain.WeatherRecord{}, &HTTPStatusError{Code: 404, Status: "404 Not Found"}
	}
	return w, nil
}

func (p *MockProvider) recs(key string, filter domain.CategoryFilter) ([]domain.RecommendationRecord, error) {
	p.mu.Lock()
	p.LastCategories = filter
	p.mu.Unlock()

	if err := p.RecsErr[key]; err != nil {
		return nil, err
	}
	r, ok := p.Recs[key]
	if !ok {
		return nil, &HTTPStatusError{Code: 404, Status: "404 Not Found"}
	}
	return r, nil
}

func (p *MockProvider) WeatherByCity(ctx context.Context, city string) (domain.WeatherRecord, error) {
	p.record("weather:" + city)
	return p.weather(city)
}

func (p *MockProvider) WeatherByCoordinates(ctx context.Context, c domain.Coordinates) (domain.WeatherRecord, error) {
	p.record("weather:" + c.String())
	return p.weather(c.String())
}

func (p *MockProvider) Recommendations(ctx context.Context, city string, filter domain.CategoryFilter) ([]domain.RecommendationRecord, error) {
	p.record(fmt.Sprintf("recs:%s", city))
	return p.recs(city, filter)
}

func (p *MockProvider) RecommendationsByCoordinates(ctx context.Context, c domain.Coordinates, filter domain.CategoryFilter) ([]domain.RecommendationRecord, error) {
	p.record("recs:" + c.String())
	return p.recs(c.String(), filter)
}
