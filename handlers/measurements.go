package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quantitytakeoff/takeoff"
)

// HandleMeasurementList returns a handler that serves the per-instance
// measurement lines of an element type together with their aggregated
// total. Manual lines and projects without a loaded model yield an empty
// list.
func HandleMeasurementList(app *pocketbase.PocketBase, engines *EngineSet) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		typeID := e.Request.PathValue("typeId")
		if typeID == "" {
			return e.String(http.StatusBadRequest, "Missing element type ID")
		}

		record, err := app.FindRecordById("element_types", typeID)
		if err != nil {
			return e.String(http.StatusNotFound, "Element type not found")
		}

		eng := engines.For(record.GetString("project"))
		lines := eng.MeasurementsFor(configFromRecord(record))
		if lines == nil {
			lines = []takeoff.MeasurementLine{}
		}

		unit := takeoff.Unit(record.GetString("unit"))
		return e.JSON(http.StatusOK, map[string]any{
			"unit":         string(unit),
			"unitSymbol":   unit.Symbol(),
			"measurements": lines,
			"total":        takeoff.SumMeasurements(lines),
		})
	}
}
