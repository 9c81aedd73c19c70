package takeoff

import "sync"

// ElementTypeConfig describes one budget line: which instances to match and
// which unit to measure them in. Manual configs bypass the engine entirely;
// their quantity is entered by hand.
type ElementTypeConfig struct {
	Category string
	TypeName string
	Unit     Unit
	IsManual bool
}

// MeasurementLine is one computed quantity row for a single element
// instance.
type MeasurementLine struct {
	InstanceID  string      `json:"instanceId"`
	DisplayName string      `json:"displayName"`
	Value       float64     `json:"value"`
	Dimensions  *Dimensions `json:"dimensions,omitempty"`
	Comment     string      `json:"comment,omitempty"`
}

// Engine aggregates measurement lines over an immutable model snapshot.
// Results are memoized per (category, type name, unit) so repeated UI
// renders do not re-scan the model. The cache is dropped wholesale whenever
// the model is replaced: staleness cannot be detected per key without a
// re-scan.
type Engine struct {
	mu    sync.RWMutex
	model *Model
	cache MeasurementCache
}

// NewEngine creates an engine with the default in-memory cache and no model
// loaded.
func NewEngine() *Engine {
	return NewEngineWithCache(NewMemoryCache())
}

// NewEngineWithCache creates an engine with a caller-supplied cache.
func NewEngineWithCache(cache MeasurementCache) *Engine {
	return &Engine{cache: cache}
}

// SetModel installs a new model snapshot and invalidates every cached
// result. The write lock excludes in-flight aggregations.
func (e *Engine) SetModel(m *Model) {
	e.mu.Lock()
	e.model = m
	e.cache.Clear()
	e.mu.Unlock()
}

// Model returns the current snapshot, or nil if none is loaded.
func (e *Engine) Model() *Model {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.model
}

// MeasurementsFor computes the measurement lines for one element-type
// configuration, in model iteration order. Manual configs and an unloaded
// model yield an empty result without touching the cache. Callers must not
// mutate the returned slice; it is shared with the cache.
func (e *Engine) MeasurementsFor(cfg ElementTypeConfig) []MeasurementLine {
	if cfg.IsManual {
		return nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.model == nil {
		return nil
	}

	key := CacheKey{Category: cfg.Category, TypeName: cfg.TypeName, Unit: cfg.Unit}
	if lines, ok := e.cache.Get(key); ok {
		return lines
	}

	instances := FindInstances(e.model, cfg.Category, cfg.TypeName)
	lines := make([]MeasurementLine, 0, len(instances))
	for _, inst := range instances {
		line := MeasurementLine{
			InstanceID:  inst.ID,
			DisplayName: ResolveDisplayName(inst),
			Value:       ValueForUnit(inst, cfg.Unit),
			Comment:     ExtractComment(inst),
		}
		if inst.BoundingBox != nil {
			d := inst.BoundingBox.Dimensions()
			line.Dimensions = &d
		}
		lines = append(lines, line)
	}

	e.cache.Put(key, lines)
	return lines
}

// SumMeasurements totals the values of a measurement sequence.
func SumMeasurements(lines []MeasurementLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Value
	}
	return total
}
