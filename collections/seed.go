package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type chapterDef struct {
	code string
	name string
}

// chapterCatalog is the static classification catalog budget lines are
// grouped under. Codes are hierarchical: "04" is a chapter, "04.01" a
// subchapter.
var chapterCatalog = []chapterDef{
	{"01", "Actuaciones previas y demoliciones"},
	{"02", "Movimiento de tierras"},
	{"03", "Cimentación"},
	{"04", "Estructura"},
	{"04.01", "Estructura de hormigón"},
	{"04.02", "Estructura metálica"},
	{"05", "Albañilería"},
	{"05.01", "Fachadas"},
	{"05.02", "Particiones"},
	{"06", "Cubiertas"},
	{"07", "Aislamientos e impermeabilización"},
	{"08", "Carpintería exterior"},
	{"09", "Carpintería interior"},
	{"10", "Instalaciones"},
	{"10.01", "Fontanería y saneamiento"},
	{"10.02", "Electricidad"},
	{"10.03", "Climatización"},
	{"11", "Revestimientos"},
	{"12", "Pinturas y acabados"},
	{"13", "Urbanización"},
}

// Seed populates the chapters collection with the standard classification
// catalog. It is safe to call on every startup because it returns early if
// any chapter records already exist.
func Seed(app *pocketbase.PocketBase) error {
	chaptersCol, err := app.FindCollectionByNameOrId("chapters")
	if err != nil {
		return fmt.Errorf("seed: could not find chapters collection: %w", err)
	}
	existing, err := app.FindAllRecords(chaptersCol)
	if err != nil {
		return fmt.Errorf("seed: could not query chapters: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: chapters collection is empty, inserting catalog...")

	for i, def := range chapterCatalog {
		record := core.NewRecord(chaptersCol)
		record.Set("code", def.code)
		record.Set("name", def.name)
		record.Set("sort_order", i+1)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: failed to save chapter %q: %w", def.code, err)
		}
	}

	log.Printf("seed: inserted %d chapters.\n", len(chapterCatalog))
	return nil
}
