package takeoff

import (
	"sort"
	"strings"
)

// commentFragments mark property names that conventionally hold free-text
// notes across source model dialects.
var commentFragments = []string{
	"comentarios", "comments", "comentaris",
	"descripcion", "descripcio", "description",
	"remarks", "notes", "note", "tag", "mark",
}

// ExtractComment finds a free-text note for an instance, best effort: the
// flat attributes map first, then the property sets, then the flat
// properties map. The first non-empty trimmed string wins; no match yields
// the empty string, which is not an error.
func ExtractComment(inst *ElementInstance) string {
	if s := commentFromMap(inst.Attributes); s != "" {
		return s
	}
	for _, set := range inst.PropertySets {
		for _, prop := range set.Properties {
			if !isCommentKey(prop.Name) {
				continue
			}
			if s := commentText(prop.Value); s != "" {
				return s
			}
		}
	}
	return commentFromMap(inst.Properties)
}

// commentFromMap scans a flat name/value map in sorted key order so the
// result does not depend on map iteration order.
func commentFromMap(values map[string]PropertyValue) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !isCommentKey(k) {
			continue
		}
		if s := commentText(values[k]); s != "" {
			return s
		}
	}
	return ""
}

func isCommentKey(name string) bool {
	normalized := NormalizeKey(name)
	for _, fragment := range commentFragments {
		if strings.Contains(normalized, fragment) {
			return true
		}
	}
	return false
}

func commentText(v PropertyValue) string {
	switch v.Kind {
	case KindText:
		return strings.TrimSpace(v.Text)
	case KindNested:
		for _, field := range []string{"value", "Value"} {
			if inner, ok := v.Nested[field]; ok {
				return commentText(inner)
			}
		}
	}
	return ""
}
