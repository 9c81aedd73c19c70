package takeoff

import (
	"strconv"
	"strings"
)

// ResolveDisplayName resolves the curated type label for an instance with a
// fixed precedence: a "Reference" property wins, then the instance's own
// name, then its type, then "Unknown".
func ResolveDisplayName(inst *ElementInstance) string {
	for _, set := range inst.PropertySets {
		for _, prop := range set.Properties {
			if NormalizeKey(prop.Name) != "reference" {
				continue
			}
			if s := displayText(prop.Value); s != "" {
				return s
			}
		}
	}
	if inst.Name != "" {
		return inst.Name
	}
	if inst.Type != "" {
		return inst.Type
	}
	return "Unknown"
}

// FindInstances selects the instances whose category and resolved display
// name match the classification exactly. Display names are curated type
// labels rather than free text, so unlike property lookups no normalization
// applies here. Result order follows model iteration order.
func FindInstances(m *Model, category, typeName string) []*ElementInstance {
	var matched []*ElementInstance
	for i := range m.Instances {
		inst := &m.Instances[i]
		if inst.Category != category {
			continue
		}
		if ResolveDisplayName(inst) != typeName {
			continue
		}
		matched = append(matched, inst)
	}
	return matched
}

func displayText(v PropertyValue) string {
	switch v.Kind {
	case KindText:
		return strings.TrimSpace(v.Text)
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindNested:
		for _, field := range []string{"value", "Value"} {
			if inner, ok := v.Nested[field]; ok {
				return displayText(inner)
			}
		}
	}
	return ""
}
