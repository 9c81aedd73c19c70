package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quantitytakeoff/takeoff"
)

// HandleElementTypeEdit returns a handler that updates the editable fields
// of an element type line. Absent fields keep their stored values.
func HandleElementTypeEdit(app *pocketbase.PocketBase, engines *EngineSet) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		typeID := e.Request.PathValue("typeId")
		if typeID == "" {
			return e.String(http.StatusBadRequest, "Missing element type ID")
		}

		record, err := app.FindRecordById("element_types", typeID)
		if err != nil {
			return e.String(http.StatusNotFound, "Element type not found")
		}

		var form elementTypeForm
		if err := e.BindBody(&form); err != nil {
			log.Printf("element_type_edit: could not parse body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		if form.ChapterCode != "" {
			record.Set("chapter_code", strings.TrimSpace(form.ChapterCode))
		}
		if form.Category != "" {
			record.Set("category", strings.TrimSpace(form.Category))
		}
		if form.TypeName != "" {
			record.Set("type_name", strings.TrimSpace(form.TypeName))
		}
		if form.Unit != "" {
			unit, err := takeoff.ParseUnit(form.Unit)
			if err != nil {
				return e.String(http.StatusBadRequest, "Unknown measurement unit")
			}
			record.Set("unit", string(unit))
		}
		if form.IsManual != nil {
			record.Set("is_manual", *form.IsManual)
		}
		if form.ManualQuantity != nil {
			record.Set("manual_quantity", *form.ManualQuantity)
		}
		if form.UnitPrice != nil {
			record.Set("unit_price", *form.UnitPrice)
		}

		if err := app.Save(record); err != nil {
			log.Printf("element_type_edit: could not save: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		eng := engines.For(record.GetString("project"))
		return e.JSON(http.StatusOK, elementTypeToResponse(eng, record))
	}
}
