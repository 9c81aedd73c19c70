package takeoff

import "testing"

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		expect    Unit
		expectErr bool
	}{
		{"canonical count", "count", UnitCount, false},
		{"legacy ud", "ud", UnitCount, false},
		{"legacy m2", "m2", UnitArea, false},
		{"area symbol", "m²", UnitArea, false},
		{"legacy m3", "m3", UnitVolume, false},
		{"legacy ml", "ml", UnitLength, false},
		{"legacy kg", "kg", UnitMass, false},
		{"mixed case", "AREA", UnitArea, false},
		{"unknown", "furlong", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnit(tt.code)
			if (err != nil) != tt.expectErr {
				t.Fatalf("ParseUnit(%q) err = %v, wantErr %v", tt.code, err, tt.expectErr)
			}
			if !tt.expectErr && got != tt.expect {
				t.Errorf("ParseUnit(%q) = %q, want %q", tt.code, got, tt.expect)
			}
		})
	}
}

func TestSynonymsFor(t *testing.T) {
	tests := []struct {
		name     string
		unit     Unit
		key      string
		expectIn bool
	}{
		{"area by accented spanish name", UnitArea, NormalizeKey("Superfície"), true},
		{"area net side", UnitArea, "netsidearea", true},
		{"length height", UnitLength, "altura", true},
		{"length width", UnitLength, "anchura", true},
		{"volume vol", UnitVolume, "vol", true},
		{"mass catalan", UnitMass, "pes", true},
		{"area does not hold length", UnitArea, "longitud", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := SynonymsFor(tt.unit)
			if set[tt.key] != tt.expectIn {
				t.Errorf("SynonymsFor(%s)[%q] = %v, want %v", tt.unit, tt.key, set[tt.key], tt.expectIn)
			}
		})
	}

	if SynonymsFor(UnitCount) != nil {
		t.Error("COUNT should have no synonym set")
	}
}

func TestUnitSymbol(t *testing.T) {
	expect := map[Unit]string{
		UnitCount:  "ud",
		UnitLength: "m",
		UnitArea:   "m²",
		UnitVolume: "m³",
		UnitMass:   "kg",
	}
	for _, u := range Units {
		if got := u.Symbol(); got != expect[u] {
			t.Errorf("%s.Symbol() = %q, want %q", u, got, expect[u])
		}
	}
}
