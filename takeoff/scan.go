package takeoff

import "strings"

// ScanForUnit searches an instance's property sets for a usable quantity
// whose normalized name belongs to the synonym set.
//
// Two passes: a generic pass over every property set, then a pass restricted
// to dedicated quantity sets ("BaseQuantities" and friends) that also probes
// the NominalValue wrapper convention. The generic pass runs first
// unconditionally, so a generic match shadows an authoritative one appearing
// later; existing budgets depend on that ordering and
// TestScanForUnit_GenericPassWins pins it. Zero and negative matches are
// treated as absent.
func ScanForUnit(inst *ElementInstance, synonyms map[string]bool) (float64, bool) {
	if len(synonyms) == 0 {
		return 0, false
	}

	for _, set := range inst.PropertySets {
		for _, prop := range set.Properties {
			if !synonyms[NormalizeKey(prop.Name)] {
				continue
			}
			if n, ok := ToNumber(prop.Value); ok && n > 0 {
				return n, true
			}
		}
	}

	for _, set := range inst.PropertySets {
		if !isQuantitySet(set.Name) {
			continue
		}
		for _, prop := range set.Properties {
			if !synonyms[NormalizeKey(prop.Name)] {
				continue
			}
			if n, ok := coerceQuantity(prop.Value); ok && n > 0 {
				return n, true
			}
		}
	}

	return 0, false
}

// isQuantitySet reports whether a set name marks a dedicated quantities set.
// Matching on "quantities" also covers the "basequantities" convention.
func isQuantitySet(name string) bool {
	return strings.Contains(NormalizeKey(name), "quantities")
}

// coerceQuantity is ToNumber with the NominalValue wrapper probed first,
// the convention dedicated quantity sets use.
func coerceQuantity(v PropertyValue) (float64, bool) {
	if v.Kind == KindNested {
		for _, field := range []string{"nominalValue", "NominalValue"} {
			if inner, ok := v.Nested[field]; ok {
				return ToNumber(inner)
			}
		}
	}
	return ToNumber(v)
}
