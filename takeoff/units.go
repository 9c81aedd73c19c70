package takeoff

import "fmt"

// Unit is the closed measurement vocabulary for element-type configurations.
type Unit string

const (
	UnitCount  Unit = "count"
	UnitLength Unit = "length"
	UnitArea   Unit = "area"
	UnitVolume Unit = "volume"
	UnitMass   Unit = "mass"
)

// Units lists the vocabulary in display order.
var Units = []Unit{UnitCount, UnitLength, UnitArea, UnitVolume, UnitMass}

// Symbol returns the measurement symbol shown on budget documents.
func (u Unit) Symbol() string {
	switch u {
	case UnitCount:
		return "ud"
	case UnitLength:
		return "m"
	case UnitArea:
		return "m²"
	case UnitVolume:
		return "m³"
	case UnitMass:
		return "kg"
	}
	return string(u)
}

// ParseUnit resolves a stored unit code. It accepts both the canonical codes
// and the measurement symbols older exports used ("ud", "m2", ...).
func ParseUnit(code string) (Unit, error) {
	switch NormalizeKey(code) {
	case "count", "ud", "u", "unidades":
		return UnitCount, nil
	case "length", "m", "ml", "metros":
		return UnitLength, nil
	case "area", "m2", "m²":
		return UnitArea, nil
	case "volume", "m3", "m³":
		return UnitVolume, nil
	case "mass", "kg", "t":
		return UnitMass, nil
	}
	return "", fmt.Errorf("unknown unit code %q", code)
}

// unitSynonyms maps each unit to the normalized property names that may
// carry an authoritative quantity for it. COUNT has no synonyms; it never
// consults properties.
var unitSynonyms = map[Unit]map[string]bool{
	UnitArea: synonymSet(
		"NetArea", "GrossArea", "Area", "Superficie",
		"NetSideArea", "GrossSideArea", "NetSurfaceArea", "GrossSurfaceArea",
		"OuterSurfaceArea", "TotalSurfaceArea",
	),
	UnitLength: synonymSet(
		"Length", "Longitud", "Len", "Altura", "Height",
		"Width", "Anchura", "Profundidad", "Depth",
	),
	UnitVolume: synonymSet("NetVolume", "GrossVolume", "Volume", "Volumen", "Vol"),
	UnitMass:   synonymSet("Mass", "Massa", "Masa", "Weight", "Peso", "Pes"),
}

func synonymSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[NormalizeKey(name)] = true
	}
	return set
}

// SynonymsFor returns the property-name synonym set for a unit.
func SynonymsFor(u Unit) map[string]bool {
	return unitSynonyms[u]
}
