package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quantitytakeoff/takeoff"
)

// elementTypeForm is the JSON body of element type create and edit requests.
type elementTypeForm struct {
	ChapterCode    string   `json:"chapterCode"`
	Category       string   `json:"category"`
	TypeName       string   `json:"typeName"`
	Unit           string   `json:"unit"`
	IsManual       *bool    `json:"isManual"`
	ManualQuantity *float64 `json:"manualQuantity"`
	UnitPrice      *float64 `json:"unitPrice"`
}

// HandleElementTypeCreate returns a handler that adds an element type line
// to a project.
func HandleElementTypeCreate(app *pocketbase.PocketBase, engines *EngineSet) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		if _, err := app.FindRecordById("projects", projectID); err != nil {
			return e.String(http.StatusNotFound, "Project not found")
		}

		var form elementTypeForm
		if err := e.BindBody(&form); err != nil {
			log.Printf("element_type_create: could not parse body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		form.Category = strings.TrimSpace(form.Category)
		form.TypeName = strings.TrimSpace(form.TypeName)
		if form.Category == "" || form.TypeName == "" {
			return e.String(http.StatusBadRequest, "Category and type name are required")
		}

		unit, err := takeoff.ParseUnit(form.Unit)
		if err != nil {
			return e.String(http.StatusBadRequest, "Unknown measurement unit")
		}

		col, err := app.FindCollectionByNameOrId("element_types")
		if err != nil {
			log.Printf("element_type_create: collection not found: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		// New lines go to the end of the project's list.
		existing, _ := app.FindRecordsByFilter(col, "project = {:project}", "-sort_order", 1, 0, map[string]any{"project": projectID})
		sortOrder := 1
		if len(existing) > 0 {
			sortOrder = existing[0].GetInt("sort_order") + 1
		}

		record := core.NewRecord(col)
		record.Set("project", projectID)
		record.Set("chapter_code", strings.TrimSpace(form.ChapterCode))
		record.Set("category", form.Category)
		record.Set("type_name", form.TypeName)
		record.Set("unit", string(unit))
		record.Set("sort_order", sortOrder)
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
			log.Printf("element_type_create: could not save: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		eng := engines.For(projectID)
		return e.JSON(http.StatusOK, elementTypeToResponse(eng, record))
	}
}
