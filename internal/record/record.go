// Package record reads loosely-typed JSON objects whose field names are not
// stable upstream. Every lookup walks an ordered list of candidate keys and
// falls back to a caller supplied default; absence is never an error.
package record

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is a decoded JSON object.
type Record map[string]any

// Pick returns the first present, non-null value among keys, else fallback.
func Pick(r Record, keys []string, fallback any) any {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v
		}
	}
	return fallback
}

// String picks a value and renders scalars as text. Objects and arrays yield fallback.
func String(r Record, keys []string, fallback string) string {
	switch v := Pick(r, keys, nil).(type) {
	case nil:
		return fallback
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case int, int64:
		return fmt.Sprint(v)
	default:
		return fallback
	}
}

// Number picks a value and coerces it to a finite float64.
// NaN, ±Inf, empty strings and non-numeric values report ok=false.
func Number(r Record, keys []string) (float64, bool) {
	return ToNumber(Pick(r, keys, nil))
}

// NumberPtr is Number returning nil instead of ok=false.
func NumberPtr(r Record, keys []string) *float64 {
	n, ok := Number(r, keys)
	if !ok {
		return nil
	}
	return &n
}

// ToNumber coerces a single decoded JSON value.
func ToNumber(v any) (float64, bool) {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Bool picks a value and reports it only when it is an explicit JSON boolean.
func Bool(r Record, keys []string) (bool, bool) {
	b, ok := Pick(r, keys, nil).(bool)
	return b, ok
}

// BoolPtr is Bool returning nil when the value is absent or not a boolean.
func BoolPtr(r Record, keys []string) *bool {
	b, ok := Bool(r, keys)
	if !ok {
		return nil
	}
	return &b
}

// Nested returns the object stored under key, or nil.
func Nested(r Record, key string) Record {
	switch v := r[key].(type) {
	case map[string]any:
		return Record(v)
	case Record:
		return v
	default:
		return nil
	}
}
