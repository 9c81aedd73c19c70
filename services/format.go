package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatEUR formats a float64 amount into euro notation using Spanish
// grouping: thousands separated by periods, decimal comma, trailing symbol
// (e.g. 1.234.567,89 €). The result always includes exactly 2 decimal
// places.
func FormatEUR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	// Format with 2 decimal places.
	raw := fmt.Sprintf("%.2f", amount)

	// Split into integer and decimal parts.
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := applyThousandsGrouping(intPart) + "," + decPart + " €"
	if negative {
		result = "-" + result
	}
	return result
}

// applyThousandsGrouping inserts periods into an integer string, grouping
// digits in threes from the right.
func applyThousandsGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	if len(remaining) > 0 {
		result = remaining + "." + result
	}

	return result
}

// formatQty returns a string representation of a quantity value. Whole
// numbers are formatted without decimals; fractional values get 3 decimal
// places, the usual measurement precision on budget documents.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.3f", qty)
}
