package services

import "testing"

func TestFormatEUR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		expect string
	}{
		{"zero", 0, "0,00 €"},
		{"under a thousand", 845.5, "845,50 €"},
		{"thousands", 1234.56, "1.234,56 €"},
		{"millions", 1234567.89, "1.234.567,89 €"},
		{"exact grouping boundary", 1000, "1.000,00 €"},
		{"rounds to two decimals", 12.345, "12,35 €"},
		{"negative", -9876.5, "-9.876,50 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatEUR(tt.amount); got != tt.expect {
				t.Errorf("FormatEUR(%v) = %q, want %q", tt.amount, got, tt.expect)
			}
		})
	}
}

func TestApplyThousandsGrouping(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1.234"},
		{"123456", "123.456"},
		{"1234567", "1.234.567"},
		{"1000000000", "1.000.000.000"},
	}

	for _, tt := range tests {
		if got := applyThousandsGrouping(tt.in); got != tt.expect {
			t.Errorf("applyThousandsGrouping(%q) = %q, want %q", tt.in, got, tt.expect)
		}
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		qty    float64
		expect string
	}{
		{1, "1"},
		{42, "42"},
		{14.5, "14.500"},
		{0.125, "0.125"},
	}

	for _, tt := range tests {
		if got := formatQty(tt.qty); got != tt.expect {
			t.Errorf("formatQty(%v) = %q, want %q", tt.qty, got, tt.expect)
		}
	}
}
