package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleElementTypeDelete returns a handler that removes an element type
// line from its project.
func HandleElementTypeDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		typeID := e.Request.PathValue("typeId")
		if typeID == "" {
			return e.String(http.StatusBadRequest, "Missing element type ID")
		}

		record, err := app.FindRecordById("element_types", typeID)
		if err != nil {
			return e.String(http.StatusNotFound, "Element type not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("element_type_delete: could not delete: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return e.JSON(http.StatusOK, map[string]any{"deleted": typeID})
	}
}
