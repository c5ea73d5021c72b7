package record

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func decode(t *testing.T, s string) Record {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var r Record
	if err := dec.Decode(&r); err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return r
}

func TestPickOrderedFallback(t *testing.T) {
	r := decode(t, `{"lng": 18.07, "lon": null, "name": "Gamla Stan"}`)

	if got := Pick(r, []string{"lon", "lng", "longitude"}, "none"); got.(json.Number).String() != "18.07" {
		t.Fatalf("Pick = %v, want 18.07 from lng", got)
	}
	if got := Pick(r, []string{"title"}, "fallback"); got != "fallback" {
		t.Fatalf("Pick = %v, want fallback", got)
	}
	if got := Pick(nil, []string{"name"}, "x"); got != "x" {
		t.Fatalf("Pick on nil record = %v, want x", got)
	}
}

func TestNumberCoercion(t *testing.T) {
	r := decode(t, `{"a": "12.5", "b": "abc", "c": "", "d": true, "e": 3, "f": {"x": 1}}`)

	if n, ok := Number(r, []string{"a"}); !ok || n != 12.5 {
		t.Fatalf("Number(a) = %v, %v; want 12.5, true", n, ok)
	}
	for _, k := range []string{"b", "c", "d", "f", "missing"} {
		if _, ok := Number(r, []string{k}); ok {
			t.Errorf("Number(%s) reported ok, want rejected", k)
		}
	}
	if n, ok := Number(r, []string{"missing", "e"}); !ok || n != 3 {
		t.Fatalf("Number(missing,e) = %v, %v; want 3, true", n, ok)
	}

	if _, ok := ToNumber(math.NaN()); ok {
		t.Fatal("NaN accepted")
	}
	if _, ok := ToNumber(math.Inf(-1)); ok {
		t.Fatal("-Inf accepted")
	}
	if _, ok := ToNumber("Infinity"); ok {
		t.Fatal("Infinity string accepted")
	}
	if NumberPtr(r, []string{"b"}) != nil {
		t.Fatal("NumberPtr(b) should be nil")
	}
}

func TestStringAndBool(t *testing.T) {
	r := decode(t, `{"name": "Café Saturnus", "score": 4, "indoor": "true", "isIndoor": false, "tags": ["a"]}`)

	if got := String(r, []string{"title", "name"}, "Unknown"); got != "Café Saturnus" {
		t.Fatalf("String = %q", got)
	}
	if got := String(r, []string{"score"}, ""); got != "4" {
		t.Fatalf("String(score) = %q, want 4", got)
	}
	if got := String(r, []string{"tags"}, "none"); got != "none" {
		t.Fatalf("String(tags) = %q, want fallback", got)
	}

	if _, ok := Bool(r, []string{"indoor"}); ok {
		t.Fatal("textual indoor accepted as boolean")
	}
	if b := BoolPtr(r, []string{"isIndoor"}); b == nil || *b {
		t.Fatalf("BoolPtr(isIndoor) = %v, want false", b)
	}
}

func TestNested(t *testing.T) {
	r := decode(t, `{"activity": {"name": "Skansen"}, "score": 80}`)
	if got := String(Nested(r, "activity"), []string{"name"}, ""); got != "Skansen" {
		t.Fatalf("nested name = %q, want Skansen", got)
	}
	if Nested(r, "score") != nil {
		t.Fatal("scalar returned as nested record")
	}
}
