package takeoff

// ValueForUnit resolves one quantity for an instance in the requested unit:
// authoritative properties first, geometric estimate second. It is total:
// every unit yields a finite, non-negative value, so a budget line never
// fails to measure. An authoritative zero is indistinguishable from absence
// and triggers the geometric fallback.
func ValueForUnit(inst *ElementInstance, unit Unit) float64 {
	if unit == UnitCount {
		return 1
	}
	if n, ok := ScanForUnit(inst, SynonymsFor(unit)); ok {
		return n
	}
	return EstimateFromGeometry(inst.BoundingBox, inst.Category, unit)
}
