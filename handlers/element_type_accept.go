package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleElementTypeAccept returns a handler that toggles the accepted flag
// of an element type line.
func HandleElementTypeAccept(app *pocketbase.PocketBase, engines *EngineSet) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		typeID := e.Request.PathValue("typeId")
		if typeID == "" {
			return e.String(http.StatusBadRequest, "Missing element type ID")
		}

		record, err := app.FindRecordById("element_types", typeID)
		if err != nil {
			return e.String(http.StatusNotFound, "Element type not found")
		}

		record.Set("accepted", !record.GetBool("accepted"))
		if err := app.Save(record); err != nil {
			log.Printf("element_type_accept: could not save: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		eng := engines.For(record.GetString("project"))
		return e.JSON(http.StatusOK, elementTypeToResponse(eng, record))
	}
}
