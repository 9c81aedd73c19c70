package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"quantitytakeoff/takeoff"
)

// MigrateLegacyUnits rewrites element-type unit codes stored by older
// exports ("m2", "ud", ...) to the canonical vocabulary. Safe to call on
// every startup -- records already in canonical form are left untouched.
func MigrateLegacyUnits(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("element_types")
	if err != nil {
		return fmt.Errorf("migrate: could not find element_types collection: %w", err)
	}

	records, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("migrate: could not query element_types: %w", err)
	}

	migrated := 0
	for _, record := range records {
		stored := record.GetString("unit")
		unit, err := takeoff.ParseUnit(stored)
		if err != nil {
			log.Printf("migrate: element type %s has unrecognized unit %q, leaving as-is\n", record.Id, stored)
			continue
		}
		if stored == string(unit) {
			continue
		}

		record.Set("unit", string(unit))
		if err := app.Save(record); err != nil {
			log.Printf("migrate: failed to update element type %s: %v\n", record.Id, err)
			continue
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("migrate: normalized %d legacy unit code(s).\n", migrated)
	}
	return nil
}
