package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateBudgetExcel_BasicBudget(t *testing.T) {
	data := BudgetExportData{
		ProjectName:   "Vivienda unifamiliar",
		ModelFilename: "vivienda.json",
		GeneratedDate: "2026-08-28",
		Rows: []BudgetExportRow{
			{Level: 0, Index: "04", Description: "Estructura", Amount: 4698},
			{Level: 1, Index: "04.1", Description: "Muro hormigón 30cm", Unit: "m²", Quantity: 145, UnitPrice: 32.4, Amount: 4698},
			{Level: 2, Index: "04.1.1", Description: "Muro P1", Unit: "m²", Quantity: 14.5, UnitPrice: 32.4, Comment: "planta baja"},
		},
		Total: 4698,
	}

	result, err := GenerateBudgetExcel(data)
	if err != nil {
		t.Fatalf("GenerateBudgetExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateBudgetExcel() returned empty bytes")
	}

	// Reopen and verify contents.
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("reopen generated file: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != "Vivienda unifamiliar" {
		t.Errorf("sheet name = %q, want project name", sheet)
	}

	title, _ := f.GetCellValue(sheet, "A1")
	if title != "Presupuesto: Vivienda unifamiliar" {
		t.Errorf("A1 = %q", title)
	}

	// Row 6 is the first data row (the chapter).
	idx, _ := f.GetCellValue(sheet, "A6")
	if idx != "04" {
		t.Errorf("A6 = %q, want 04", idx)
	}
	amount, _ := f.GetCellValue(sheet, "F6")
	if amount != "4.698,00 €" {
		t.Errorf("F6 = %q, want formatted chapter amount", amount)
	}

	// Measurement line carries its comment and no amount of its own.
	desc, _ := f.GetCellValue(sheet, "B8")
	if desc != "    Muro P1 (planta baja)" {
		t.Errorf("B8 = %q", desc)
	}
	lineAmount, _ := f.GetCellValue(sheet, "F8")
	if lineAmount != "" {
		t.Errorf("F8 = %q, want empty for measurement line", lineAmount)
	}
}

func TestGenerateBudgetExcel_LongProjectName(t *testing.T) {
	data := BudgetExportData{
		ProjectName:   "Rehabilitación integral del edificio de la calle Mayor 123",
		GeneratedDate: "2026-08-28",
	}

	result, err := GenerateBudgetExcel(data)
	if err != nil {
		t.Fatalf("GenerateBudgetExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("reopen generated file: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if len(sheet) > 31 {
		t.Errorf("sheet name %q exceeds 31 chars", sheet)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		expect string
	}{
		{"plain text", "Muro hormigón", "Muro hormigón"},
		{"empty", "", ""},
		{"formula equals", "=SUM(A1:A9)", "'=SUM(A1:A9)"},
		{"leading plus", "+1234", "'+1234"},
		{"leading minus", "-cmd", "'-cmd"},
		{"leading at", "@macro", "'@macro"},
		{"leading tab", "\tdata", "'\tdata"},
		{"leading pipe", "|shell", "'|shell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.in); got != tt.expect {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.in, got, tt.expect)
			}
		})
	}
}

func TestThinBorders(t *testing.T) {
	borders := thinBorders()
	if len(borders) != 4 {
		t.Fatalf("expected 4 borders, got %d", len(borders))
	}
	for _, b := range borders {
		if b.Style != 1 {
			t.Errorf("border %s style = %d, want 1", b.Type, b.Style)
		}
		if b.Color != "#000000" {
			t.Errorf("border %s color = %q, want #000000", b.Type, b.Color)
		}
	}
}
