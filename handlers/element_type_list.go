package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleElementTypeList returns a handler that lists the element types of a
// project with their computed quantities and amounts.
func HandleElementTypeList(app *pocketbase.PocketBase, engines *EngineSet) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		if _, err := app.FindRecordById("projects", projectID); err != nil {
			return e.String(http.StatusNotFound, "Project not found")
		}

		col, err := app.FindCollectionByNameOrId("element_types")
		if err != nil {
			log.Printf("element_type_list: collection not found: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		records, err := app.FindRecordsByFilter(col, "project = {:project}", "sort_order", 0, 0, map[string]any{"project": projectID})
		if err != nil {
			log.Printf("element_type_list: query failed: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		eng := engines.For(projectID)
		lines := make([]elementTypeResponse, 0, len(records))
		var total float64
		for _, r := range records {
			line := elementTypeToResponse(eng, r)
			lines = append(lines, line)
			total += line.Amount
		}

		return e.JSON(http.StatusOK, map[string]any{
			"elementTypes": lines,
			"total":        total,
		})
	}
}
