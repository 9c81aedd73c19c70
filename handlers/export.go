package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quantitytakeoff/services"
	"quantitytakeoff/takeoff"
)

// buildBudgetExportData assembles the full budget document for a project:
// chapters in catalog order, their element type lines with computed
// quantities and the per-instance measurement breakdown underneath.
func buildBudgetExportData(app *pocketbase.PocketBase, eng *takeoff.Engine, projectID string) (services.BudgetExportData, error) {
	project, err := app.FindRecordById("projects", projectID)
	if err != nil {
		return services.BudgetExportData{}, fmt.Errorf("project not found: %w", err)
	}

	typesCol, err := app.FindCollectionByNameOrId("element_types")
	if err != nil {
		return services.BudgetExportData{}, fmt.Errorf("collection not found: %w", err)
	}

	records, err := app.FindRecordsByFilter(typesCol, "project = {:project}", "sort_order", 0, 0, map[string]any{"project": projectID})
	if err != nil {
		records = nil
	}

	// Chapter code to name, for the level 0 rows.
	chapterNames := make(map[string]string)
	if chaptersCol, err := app.FindCollectionByNameOrId("chapters"); err == nil {
		if chapters, err := app.FindAllRecords(chaptersCol); err == nil {
			for _, c := range chapters {
				chapterNames[c.GetString("code")] = c.GetString("name")
			}
		}
	}

	// Group lines by chapter, preserving first-seen chapter order.
	var chapterOrder []string
	byChapter := make(map[string][]*core.Record)
	for _, r := range records {
		code := r.GetString("chapter_code")
		if _, seen := byChapter[code]; !seen {
			chapterOrder = append(chapterOrder, code)
		}
		byChapter[code] = append(byChapter[code], r)
	}

	var rows []services.BudgetExportRow
	var total float64

	for _, code := range chapterOrder {
		chapterRows := byChapter[code]

		// Chapter amount rolls up its lines; computed before emitting the
		// chapter row so the amount can sit on it.
		var chapterTotal float64
		for _, r := range chapterRows {
			chapterTotal += services.CalcLineAmount(elementTypeQuantity(eng, r), r.GetFloat("unit_price"))
		}
		total += chapterTotal

		name := chapterNames[code]
		if name == "" {
			name = "Sin capítulo"
		}
		rows = append(rows, services.BudgetExportRow{
			Level:       0,
			Index:       code,
			Description: name,
			Amount:      chapterTotal,
		})

		for i, r := range chapterRows {
			unit := takeoff.Unit(r.GetString("unit"))
			qty := elementTypeQuantity(eng, r)
			price := r.GetFloat("unit_price")

			rows = append(rows, services.BudgetExportRow{
				Level:       1,
				Index:       fmt.Sprintf("%s.%d", code, i+1),
				Description: r.GetString("type_name"),
				Unit:        unit.Symbol(),
				Quantity:    qty,
				UnitPrice:   price,
				Amount:      services.CalcLineAmount(qty, price),
			})

			for j, line := range eng.MeasurementsFor(configFromRecord(r)) {
				rows = append(rows, services.BudgetExportRow{
					Level:       2,
					Index:       fmt.Sprintf("%s.%d.%d", code, i+1, j+1),
					Description: line.DisplayName,
					Unit:        unit.Symbol(),
					Quantity:    line.Value,
					UnitPrice:   price,
					Comment:     line.Comment,
				})
			}
		}
	}

	return services.BudgetExportData{
		ProjectName:   project.GetString("name"),
		ModelFilename: project.GetString("model_filename"),
		GeneratedDate: time.Now().Format("02/01/2006"),
		Rows:          rows,
		Total:         total,
	}, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleBudgetExportPDF returns a handler that generates and downloads the
// budget document as a PDF.
func HandleBudgetExportPDF(app *pocketbase.PocketBase, engines *EngineSet) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		data, err := buildBudgetExportData(app, engines.For(projectID), projectID)
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return e.String(http.StatusNotFound, "Project not found")
		}

		pdfBytes, err := services.GenerateBudgetPDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Presupuesto_%s_%d.pdf", sanitizeFilename(data.ProjectName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleBudgetExportExcel returns a handler that generates and downloads the
// budget document as an Excel workbook.
func HandleBudgetExportExcel(app *pocketbase.PocketBase, engines *EngineSet) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		data, err := buildBudgetExportData(app, engines.For(projectID), projectID)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return e.String(http.StatusNotFound, "Project not found")
		}

		xlsxBytes, err := services.GenerateBudgetExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Presupuesto_%s_%d.xlsx", sanitizeFilename(data.ProjectName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
