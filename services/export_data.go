package services

// BudgetExportRow represents a single row in the budget export (chapter,
// element type, or measurement line).
type BudgetExportRow struct {
	Level       int    // 0 = chapter, 1 = element type, 2 = measurement line
	Index       string // "04", "04.1", "04.1.3" etc
	Description string
	Unit        string // measurement symbol (ud, m, m², m³, kg)
	Quantity    float64
	UnitPrice   float64
	Amount      float64
	Comment     string
}

// BudgetExportData holds all data needed for a budget export.
type BudgetExportData struct {
	ProjectName   string
	ModelFilename string
	GeneratedDate string
	Rows          []BudgetExportRow
	Total         float64
}
