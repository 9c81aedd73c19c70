package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// chapterResponse is the JSON shape of a chapter catalog entry.
type chapterResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// HandleChapterList returns a handler that serves the chapter catalog
// ordered by code.
func HandleChapterList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		col, err := app.FindCollectionByNameOrId("chapters")
		if err != nil {
			log.Printf("chapters: collection not found: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		records, err := app.FindRecordsByFilter(col, "id != ''", "sort_order", 0, 0, nil)
		if err != nil {
			log.Printf("chapters: query failed: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		chapters := make([]chapterResponse, 0, len(records))
		for _, r := range records {
			chapters = append(chapters, chapterResponse{
				ID:        r.Id,
				Code:      r.GetString("code"),
				Name:      r.GetString("name"),
				SortOrder: r.GetInt("sort_order"),
			})
		}

		return e.JSON(http.StatusOK, chapters)
	}
}
