// Package testhelpers provides utilities for testing PocketBase-based
// applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quantitytakeoff/collections"
	"quantitytakeoff/takeoff"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestProject creates a project record with the given name and returns it.
func CreateTestProject(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		t.Fatalf("failed to find projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("status", "active")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project: %v", err)
	}

	return record
}

// CreateTestChapter creates a chapter catalog record.
func CreateTestChapter(t *testing.T, app *pocketbase.PocketBase, code, name string, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("chapters")
	if err != nil {
		t.Fatalf("failed to find chapters collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("code", code)
	record.Set("name", name)
	record.Set("sort_order", sortOrder)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test chapter: %v", err)
	}

	return record
}

// CreateTestElementType creates an element-type configuration linked to a
// project and returns it.
func CreateTestElementType(t *testing.T, app *pocketbase.PocketBase, projectID, category, typeName string, unit takeoff.Unit) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("element_types")
	if err != nil {
		t.Fatalf("failed to find element_types collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project", projectID)
	record.Set("chapter_code", "04")
	record.Set("category", category)
	record.Set("type_name", typeName)
	record.Set("unit", string(unit))
	record.Set("unit_price", 25.0)
	record.Set("sort_order", 1)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test element type: %v", err)
	}

	return record
}

// TestModel returns a small in-memory model snapshot with two matching
// walls (one authoritative area, one geometric fallback) and a door.
func TestModel() *takeoff.Model {
	return &takeoff.Model{
		SnapshotID: "test-snapshot",
		Source:     "edificio.ifc",
		Instances: []takeoff.ElementInstance{
			{
				ID:       "w1",
				Category: "IfcWallStandardCase",
				Name:     "Muro 30",
				PropertySets: []takeoff.PropertySet{
					{Name: "Dimensions", Properties: []takeoff.Property{
						{Name: "Area", Value: takeoff.Number(14.5)},
					}},
				},
				Attributes: map[string]takeoff.PropertyValue{
					"Comentarios": takeoff.Text("planta baja"),
				},
				BoundingBox: &takeoff.BoundingBox{MaxX: 4, MaxY: 0.3, MaxZ: 2.7},
			},
			{
				ID:          "w2",
				Category:    "IfcWallStandardCase",
				Name:        "Muro 30",
				BoundingBox: &takeoff.BoundingBox{MaxX: 2, MaxY: 0.3, MaxZ: 3},
			},
			{
				ID:       "d1",
				Category: "IfcDoor",
				Name:     "Puerta 80",
			},
		},
	}
}

// AssertBodyContains checks that body contains all specified fragments.
func AssertBodyContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected body to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
