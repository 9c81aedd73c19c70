package takeoff

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// nestedValueFields are probed in order when coercing a wrapper object.
// Field names are matched case-sensitively.
var nestedValueFields = []string{"value", "Value", "val", "Val", "NominalValue"}

var numberPattern = regexp.MustCompile(`[-+]?[0-9]+(?:\.[0-9]+)?(?:[eE][-+]?[0-9]+)?`)

// ToNumber extracts a finite numeric value from a raw property value.
// Strings are locale-normalized ("12,5 m2" yields 12.5) and wrapper objects
// are probed for a conventional value field, recursing into the first one
// present. Absence of a usable number is reported via ok=false, never an
// error.
func ToNumber(v PropertyValue) (float64, bool) {
	switch v.Kind {
	case KindNumber:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return 0, false
		}
		return v.Number, true
	case KindText:
		return parseNumberText(v.Text)
	case KindNested:
		for _, field := range nestedValueFields {
			if inner, ok := v.Nested[field]; ok {
				return ToNumber(inner)
			}
		}
	}
	return 0, false
}

// parseNumberText pulls the first signed decimal or scientific-notation
// substring out of a free-form string. Decimal commas become periods first.
func parseNumberText(s string) (float64, bool) {
	normalized := strings.ReplaceAll(s, ",", ".")
	match := numberPattern.FindString(normalized)
	if match == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
