package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// reorderForm carries the desired ordering of a project's element types.
type reorderForm struct {
	IDs []string `json:"ids"`
}

// HandleElementTypeReorder returns a handler that rewrites the sort order
// of a project's element types to match the submitted ID sequence. IDs
// belonging to other projects are rejected.
func HandleElementTypeReorder(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		var form reorderForm
		if err := e.BindBody(&form); err != nil {
			log.Printf("element_type_reorder: could not parse body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}
		if len(form.IDs) == 0 {
			return e.String(http.StatusBadRequest, "No element type IDs given")
		}

		for i, id := range form.IDs {
			record, err := app.FindRecordById("element_types", id)
			if err != nil {
				return e.String(http.StatusNotFound, "Element type not found")
			}
			if record.GetString("project") != projectID {
				return e.String(http.StatusBadRequest, "Element type belongs to another project")
			}
			record.Set("sort_order", i+1)
			if err := app.Save(record); err != nil {
				log.Printf("element_type_reorder: could not save: %v", err)
				return e.String(http.StatusInternalServerError, "Internal error")
			}
		}

		return e.JSON(http.StatusOK, map[string]any{"reordered": len(form.IDs)})
	}
}
