// Package takeoff implements the quantity extraction and classification
// engine: given a building model's metadata graph and an element-type
// classification, it computes a normalized quantity (count, length, area,
// volume or mass) for every matching element instance and aggregates them
// into measurement lines for a budget line item.
//
// Source models are heterogeneous and inconsistently populated, so every
// resolution step degrades to an explicit "absent" value instead of failing.
package takeoff

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// ValueKind discriminates the closed set of shapes a raw property value
// can take.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindNumber
	KindText
	KindNested
)

// PropertyValue is a raw model property value. Exporters wrap values
// inconsistently (plain numbers, locale-formatted strings, {value: ...}
// objects), so the value is kept as a closed variant and resolved lazily
// by ToNumber and friends.
type PropertyValue struct {
	Kind   ValueKind
	Number float64
	Text   string
	Nested map[string]PropertyValue
}

// Number wraps a plain numeric value.
func Number(n float64) PropertyValue { return PropertyValue{Kind: KindNumber, Number: n} }

// Text wraps a plain string value.
func Text(s string) PropertyValue { return PropertyValue{Kind: KindText, Text: s} }

// Nested wraps a structured value with named fields.
func Nested(fields map[string]PropertyValue) PropertyValue {
	return PropertyValue{Kind: KindNested, Nested: fields}
}

// UnmarshalJSON maps arbitrary JSON onto the variant. Booleans, nulls and
// arrays carry no usable quantity and decode to the absent value.
func (v *PropertyValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = valueFromAny(raw)
	return nil
}

func valueFromAny(raw any) PropertyValue {
	switch t := raw.(type) {
	case nil, bool, []any:
		return PropertyValue{}
	case string:
		return Text(t)
	case map[string]any:
		fields := make(map[string]PropertyValue, len(t))
		for name, inner := range t {
			fields[name] = valueFromAny(inner)
		}
		return Nested(fields)
	default:
		n, err := cast.ToFloat64E(t)
		if err != nil {
			return PropertyValue{}
		}
		return Number(n)
	}
}

// Property is one name/value pair inside a property set.
type Property struct {
	Name  string        `json:"name"`
	Value PropertyValue `json:"value"`
}

// PropertySet is a named, ordered group of properties attached to an
// element instance.
type PropertySet struct {
	Name       string     `json:"name"`
	Properties []Property `json:"properties"`
}

// BoundingBox is the axis-aligned box containing an instance's geometry.
type BoundingBox struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// Dimensions are the absolute edge lengths of a bounding box.
type Dimensions struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
	DZ float64 `json:"dz"`
}

// Dimensions returns the box's edge lengths. Exporters occasionally swap
// min and max, so each extent is absolute-valued.
func (b BoundingBox) Dimensions() Dimensions {
	return Dimensions{
		DX: math.Abs(b.MaxX - b.MinX),
		DY: math.Abs(b.MaxY - b.MinY),
		DZ: math.Abs(b.MaxZ - b.MinZ),
	}
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// UnmarshalJSON accepts the two box shapes seen in exports: a flat
// [minX,minY,minZ,maxX,maxY,maxZ] array or a {min:{x,y,z},max:{x,y,z}}
// object.
func (b *BoundingBox) UnmarshalJSON(data []byte) error {
	var coords []float64
	if err := json.Unmarshal(data, &coords); err == nil {
		if len(coords) < 6 {
			return fmt.Errorf("bounding box: want 6 coordinates, got %d", len(coords))
		}
		b.MinX, b.MinY, b.MinZ = coords[0], coords[1], coords[2]
		b.MaxX, b.MaxY, b.MaxZ = coords[3], coords[4], coords[5]
		return nil
	}

	var obj struct {
		Min point `json:"min"`
		Max point `json:"max"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("bounding box: %w", err)
	}
	b.MinX, b.MinY, b.MinZ = obj.Min.X, obj.Min.Y, obj.Min.Z
	b.MaxX, b.MaxY, b.MaxZ = obj.Max.X, obj.Max.Y, obj.Max.Z
	return nil
}

// MarshalJSON writes the flat array form.
func (b BoundingBox) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{b.MinX, b.MinY, b.MinZ, b.MaxX, b.MaxY, b.MaxZ})
}

// ElementInstance is one physical or logical element in the model.
// Instances are read-only: they are sourced wholesale from the exported
// model and never mutated.
type ElementInstance struct {
	ID           string                   `json:"id"`
	Category     string                   `json:"category"`
	Name         string                   `json:"name"`
	Type         string                   `json:"type"`
	PropertySets []PropertySet            `json:"propertySets"`
	Attributes   map[string]PropertyValue `json:"attributes"`
	Properties   map[string]PropertyValue `json:"properties"`
	BoundingBox  *BoundingBox             `json:"boundingBox"`
}

// Model is an immutable snapshot of a building model's metadata graph.
// It is replaced wholesale on reload, never patched.
type Model struct {
	SnapshotID string            `json:"snapshotId"`
	Source     string            `json:"source"`
	Instances  []ElementInstance `json:"instances"`
}

// ParseModel decodes an exported metadata graph. A fresh snapshot ID is
// minted on every parse so consumers can tell reloads apart.
func ParseModel(r io.Reader) (*Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	m.SnapshotID = uuid.NewString()
	return &m, nil
}
