package takeoff

import (
	"math"
	"strings"
)

// EstimateFromGeometry approximates a quantity from an instance's
// axis-aligned bounding box when no authoritative property exists. The
// category name steers the AREA heuristic: a wall's area is its largest
// vertical face, a slab's is its footprint, an opening's is its frame face.
// Without a box the estimate degrades to a neutral count of 1, keeping the
// pipeline total.
func EstimateFromGeometry(box *BoundingBox, category string, unit Unit) float64 {
	if unit == UnitCount {
		return 1
	}
	if box == nil {
		return 1
	}
	d := box.Dimensions()

	switch unit {
	case UnitArea:
		return estimateArea(d, category)
	case UnitLength:
		// Plan extent only; the height/width axis is excluded by convention.
		return math.Max(d.DX, d.DZ)
	case UnitVolume:
		return d.DX * d.DY * d.DZ
	}

	// MASS has no geometric estimate; neutral count as a last resort.
	return 1
}

func estimateArea(d Dimensions, category string) float64 {
	cat := strings.ToLower(category)
	switch {
	case strings.Contains(cat, "wall"):
		return math.Max(d.DX, d.DZ) * d.DY
	case containsAny(cat, "slab", "floor", "roof", "ceiling"):
		return d.DX * d.DZ
	case containsAny(cat, "window", "door"):
		return math.Max(d.DX*d.DY, d.DZ*d.DY)
	default:
		// Largest of the three axis-pair faces.
		return math.Max(d.DX*d.DY, math.Max(d.DX*d.DZ, d.DY*d.DZ))
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
