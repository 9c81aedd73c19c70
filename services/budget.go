// Package services provides budget calculation and document generation for
// takeoff budgets.
package services

// CalcLineAmount computes the amount of a budget line from its measured
// quantity and unit price.
func CalcLineAmount(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// BudgetLineForTotals carries the per-line inputs of the budget roll-up.
type BudgetLineForTotals struct {
	ChapterCode string
	Quantity    float64
	UnitPrice   float64
	Accepted    bool
}

// BudgetTotals is the roll-up over all budget lines of a project.
type BudgetTotals struct {
	Total         float64
	AcceptedTotal float64
	ChapterTotals map[string]float64
}

// CalcBudgetTotals sums line amounts overall, per chapter code and over
// accepted lines only.
func CalcBudgetTotals(lines []BudgetLineForTotals) BudgetTotals {
	totals := BudgetTotals{ChapterTotals: make(map[string]float64)}
	for _, line := range lines {
		amount := CalcLineAmount(line.Quantity, line.UnitPrice)
		totals.Total += amount
		totals.ChapterTotals[line.ChapterCode] += amount
		if line.Accepted {
			totals.AcceptedTotal += amount
		}
	}
	return totals
}
