package takeoff

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey canonicalizes a property name for comparison: lowercased,
// diacritics stripped, whitespace/underscores/hyphens/periods removed.
// "Superfície Neta", "superficie_neta" and "SUPERFICIE-NETA" all normalize
// to "superficieneta". Total function; empty input yields "".
func NormalizeKey(name string) string {
	lower := strings.ToLower(name)

	// The transform chain is stateful, so a fresh one is built per call
	// instead of sharing a package-level instance across goroutines.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripMarks, lower)
	if err != nil {
		stripped = lower
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if unicode.IsSpace(r) || r == '_' || r == '-' || r == '.' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
