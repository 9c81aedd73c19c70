package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"quantitytakeoff/services"
	"quantitytakeoff/takeoff"
)

// elementTypeResponse is the JSON shape of an element type line.
type elementTypeResponse struct {
	ID          string  `json:"id"`
	ChapterCode string  `json:"chapterCode"`
	Category    string  `json:"category"`
	TypeName    string  `json:"typeName"`
	Unit        string  `json:"unit"`
	UnitSymbol  string  `json:"unitSymbol"`
	IsManual    bool    `json:"isManual"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
	Accepted    bool    `json:"accepted"`
	SortOrder   int     `json:"sortOrder"`
}

// configFromRecord maps an element_types record onto the engine's
// configuration struct.
func configFromRecord(r *core.Record) takeoff.ElementTypeConfig {
	return takeoff.ElementTypeConfig{
		Category: r.GetString("category"),
		TypeName: r.GetString("type_name"),
		Unit:     takeoff.Unit(r.GetString("unit")),
		IsManual: r.GetBool("is_manual"),
	}
}

// elementTypeQuantity resolves the quantity of an element type record:
// the stored manual quantity for manual lines, otherwise the engine's
// aggregated measurement.
func elementTypeQuantity(eng *takeoff.Engine, r *core.Record) float64 {
	if r.GetBool("is_manual") {
		return r.GetFloat("manual_quantity")
	}
	return takeoff.SumMeasurements(eng.MeasurementsFor(configFromRecord(r)))
}

// elementTypeToResponse builds the JSON line for an element type record,
// computing quantity and amount through the engine.
func elementTypeToResponse(eng *takeoff.Engine, r *core.Record) elementTypeResponse {
	unit := takeoff.Unit(r.GetString("unit"))
	qty := elementTypeQuantity(eng, r)
	price := r.GetFloat("unit_price")

	return elementTypeResponse{
		ID:          r.Id,
		ChapterCode: r.GetString("chapter_code"),
		Category:    r.GetString("category"),
		TypeName:    r.GetString("type_name"),
		Unit:        string(unit),
		UnitSymbol:  unit.Symbol(),
		IsManual:    r.GetBool("is_manual"),
		Quantity:    qty,
		UnitPrice:   price,
		Amount:      services.CalcLineAmount(qty, price),
		Accepted:    r.GetBool("accepted"),
		SortOrder:   r.GetInt("sort_order"),
	}
}
