package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateBudgetPDF creates a PDF budget document from export data using
// maroto/v2. It returns the raw PDF bytes or an error.
func GenerateBudgetPDF(data BudgetExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addTableHeader(m)
	for _, r := range data.Rows {
		addTableRow(m, r)
	}
	addSummary(m, data)
	addFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds the project title, source model and date to the PDF.
func addHeader(m core.Maroto, data BudgetExportData) {
	// Title row
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Presupuesto: "+data.ProjectName, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	// Model filename and date row
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Modelo: %s", data.ModelFilename), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Fecha: %s", data.GeneratedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addTableHeader adds the column header row for the budget table.
func addTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("Código", headerText),
			).WithStyle(&headerCell),
			col.New(4).Add(
				text.New("Descripción", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Ud", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Medición", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Precio", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Importe", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addTableRow adds a single data row to the budget table, styled by level.
func addTableRow(m core.Maroto, r BudgetExportRow) {
	// Determine text style and background based on level.
	var cellStyle *props.Cell
	var textSize float64 = 7
	var textStyle fontstyle.Type = fontstyle.Normal
	descPrefix := ""

	switch r.Level {
	case 0:
		// Chapter: bold, white background.
		textStyle = fontstyle.Bold
		textSize = 8
	case 1:
		// Element type: indented, light gray background.
		descPrefix = "  "
		bg := &props.Color{Red: 245, Green: 245, Blue: 245}
		cellStyle = &props.Cell{BackgroundColor: bg}
	case 2:
		// Measurement line: double-indented, darker gray background.
		descPrefix = "    "
		bg := &props.Color{Red: 235, Green: 235, Blue: 235}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	baseText := props.Text{
		Size:  textSize,
		Style: textStyle,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	desc := descPrefix + r.Description
	if r.Comment != "" {
		desc += " (" + r.Comment + ")"
	}

	// Chapter rows carry no unit, price or amount of their own except the
	// rolled-up chapter amount.
	priceStr := ""
	if r.Level > 0 {
		priceStr = FormatEUR(r.UnitPrice)
	}
	amountStr := ""
	if r.Level != 2 {
		amountStr = FormatEUR(r.Amount)
	}

	colIndex := col.New(1).Add(text.New(r.Index, baseText))
	colDesc := col.New(4).Add(text.New(desc, leftText))
	colUnit := col.New(1).Add(text.New(r.Unit, baseText))
	colQty := col.New(2).Add(text.New(formatQty(r.Quantity), rightText))
	colPrice := col.New(2).Add(text.New(priceStr, rightText))
	colAmount := col.New(2).Add(text.New(amountStr, rightText))

	if cellStyle != nil {
		colIndex = colIndex.WithStyle(cellStyle)
		colDesc = colDesc.WithStyle(cellStyle)
		colUnit = colUnit.WithStyle(cellStyle)
		colQty = colQty.WithStyle(cellStyle)
		colPrice = colPrice.WithStyle(cellStyle)
		colAmount = colAmount.WithStyle(cellStyle)
	}

	m.AddRows(
		row.New(7).Add(
			colIndex,
			colDesc,
			colUnit,
			colQty,
			colPrice,
			colAmount,
		),
	)
}

// addSummary adds the project total at the bottom of the PDF.
func addSummary(m core.Maroto, data BudgetExportData) {
	// Spacer before summary
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("Presupuesto de ejecución material", labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(FormatEUR(data.Total), valueStyle),
			).WithStyle(summaryCell),
		),
	)
}

// addFooter adds the generated-date line at the bottom.
func addFooter(m core.Maroto, data BudgetExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generado el %s", data.GeneratedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
