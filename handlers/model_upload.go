package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quantitytakeoff/takeoff"
)

// maxModelUploadSize caps model uploads at 256 MB. Exported models of large
// buildings run to tens of megabytes of JSON.
const maxModelUploadSize = 256 << 20

// HandleModelUpload returns a handler that ingests an uploaded model file,
// loads it into the project's engine and records the snapshot on the
// project.
func HandleModelUpload(app *pocketbase.PocketBase, engines *EngineSet) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		project, err := app.FindRecordById("projects", projectID)
		if err != nil {
			return e.String(http.StatusNotFound, "Project not found")
		}

		e.Request.Body = http.MaxBytesReader(e.Response, e.Request.Body, maxModelUploadSize)
		file, header, err := e.Request.FormFile("model")
		if err != nil {
			log.Printf("model_upload: could not read file: %v", err)
			return e.String(http.StatusBadRequest, "Missing model file")
		}
		defer file.Close()

		model, err := takeoff.ParseModel(file)
		if err != nil {
			log.Printf("model_upload: could not parse model %q: %v", header.Filename, err)
			return e.String(http.StatusBadRequest, "Invalid model file")
		}
		model.Source = header.Filename

		engines.For(projectID).SetModel(model)

		project.Set("model_filename", header.Filename)
		project.Set("model_instances", len(model.Instances))
		project.Set("model_snapshot", model.SnapshotID)
		if err := app.Save(project); err != nil {
			log.Printf("model_upload: could not save project: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"snapshot":  model.SnapshotID,
			"filename":  header.Filename,
			"instances": len(model.Instances),
		})
	}
}

// HandleModelStatus returns a handler that reports whether a model is loaded
// for the project and, if so, its snapshot and instance count.
func HandleModelStatus(app *pocketbase.PocketBase, engines *EngineSet) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		if _, err := app.FindRecordById("projects", projectID); err != nil {
			return e.String(http.StatusNotFound, "Project not found")
		}

		model := engines.For(projectID).Model()
		if model == nil {
			return e.JSON(http.StatusOK, map[string]any{"loaded": false})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"loaded":    true,
			"snapshot":  model.SnapshotID,
			"filename":  model.Source,
			"instances": len(model.Instances),
		})
	}
}
