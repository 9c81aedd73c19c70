package takeoff

import "testing"

func TestResolveDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		inst   ElementInstance
		expect string
	}{
		{
			name: "reference property wins",
			inst: ElementInstance{
				Name: "wall-001",
				PropertySets: []PropertySet{
					propSet("Identity", prop("Reference", Text("Muro Exterior 30cm"))),
				},
			},
			expect: "Muro Exterior 30cm",
		},
		{
			name: "reference matched case-insensitively",
			inst: ElementInstance{
				PropertySets: []PropertySet{
					propSet("Identity", prop("REFERENCE", Text("Tabique"))),
				},
			},
			expect: "Tabique",
		},
		{
			name: "nested reference value",
			inst: ElementInstance{
				PropertySets: []PropertySet{
					propSet("Identity", prop("Reference", Nested(map[string]PropertyValue{
						"value": Text("Forjado 25"),
					}))),
				},
			},
			expect: "Forjado 25",
		},
		{
			name: "empty reference falls back to name",
			inst: ElementInstance{
				Name: "door-7",
				PropertySets: []PropertySet{
					propSet("Identity", prop("Reference", Text("  "))),
				},
			},
			expect: "door-7",
		},
		{
			name:   "name fallback",
			inst:   ElementInstance{Name: "slab-3", Type: "BaseSlab"},
			expect: "slab-3",
		},
		{
			name:   "type fallback",
			inst:   ElementInstance{Type: "BaseSlab"},
			expect: "BaseSlab",
		},
		{
			name:   "unknown fallback",
			inst:   ElementInstance{},
			expect: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDisplayName(&tt.inst)
			if got != tt.expect {
				t.Errorf("ResolveDisplayName = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestFindInstances(t *testing.T) {
	model := &Model{Instances: []ElementInstance{
		{ID: "a", Category: "IfcWallStandardCase", Name: "Muro 30"},
		{ID: "b", Category: "IfcWallStandardCase", Name: "Muro 15"},
		{ID: "c", Category: "IfcDoor", Name: "Muro 30"},
		{ID: "d", Category: "IfcWallStandardCase", PropertySets: []PropertySet{
			propSet("Identity", prop("Reference", Text("Muro 30"))),
		}},
	}}

	got := FindInstances(model, "IfcWallStandardCase", "Muro 30")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	// Model iteration order is preserved.
	if got[0].ID != "a" || got[1].ID != "d" {
		t.Errorf("unexpected match order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFindInstances_ExactMatchOnly(t *testing.T) {
	model := &Model{Instances: []ElementInstance{
		{ID: "a", Category: "IfcWallStandardCase", Name: "muro 30"},
	}}

	// Display-name matching is case-sensitive, unlike property lookups.
	if got := FindInstances(model, "IfcWallStandardCase", "Muro 30"); len(got) != 0 {
		t.Errorf("expected no match for differing case, got %d", len(got))
	}
	if got := FindInstances(model, "ifcwallstandardcase", "muro 30"); len(got) != 0 {
		t.Errorf("category match must be exact, got %d", len(got))
	}
}
