package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quantitytakeoff/takeoff"
	"quantitytakeoff/testhelpers"
)

func TestHandleElementTypeEdit_PartialUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Vivienda")
	rec := testhelpers.CreateTestElementType(t, app, proj.Id, "IfcWallStandardCase", "Muro 30", takeoff.UnitArea)
	handler := HandleElementTypeEdit(app, NewEngineSet())

	req := postJSON(t, "/test", `{"unitPrice":48.9}`)
	req.SetPathValue("typeId", rec.Id)
	w := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, w)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp elementTypeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UnitPrice != 48.9 {
		t.Errorf("unit price = %v, want 48.9", resp.UnitPrice)
	}
	// Untouched fields keep their stored values.
	if resp.TypeName != "Muro 30" {
		t.Errorf("type name = %q, want Muro 30", resp.TypeName)
	}
	if resp.Unit != string(takeoff.UnitArea) {
		t.Errorf("unit = %q, want area", resp.Unit)
	}
}

func TestHandleElementTypeEdit_SwitchToManual(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Vivienda")
	rec := testhelpers.CreateTestElementType(t, app, proj.Id, "IfcSlab", "Solera", takeoff.UnitVolume)
	handler := HandleElementTypeEdit(app, NewEngineSet())

	req := postJSON(t, "/test", `{"isManual":true,"manualQuantity":12.5}`)
	req.SetPathValue("typeId", rec.Id)
	w := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, w)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp elementTypeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.IsManual {
		t.Error("expected manual line")
	}
	if resp.Quantity != 12.5 {
		t.Errorf("quantity = %v, want the manual value 12.5", resp.Quantity)
	}
}

func TestHandleElementTypeEdit_UnknownUnit(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Vivienda")
	rec := testhelpers.CreateTestElementType(t, app, proj.Id, "IfcWall", "Muro", takeoff.UnitArea)
	handler := HandleElementTypeEdit(app, NewEngineSet())

	req := postJSON(t, "/test", `{"unit":"furlong"}`)
	req.SetPathValue("typeId", rec.Id)
	w := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, w)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleElementTypeEdit_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleElementTypeEdit(app, NewEngineSet())

	req := postJSON(t, "/test", `{"unitPrice":1}`)
	req.SetPathValue("typeId", "missing")
	w := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, w)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
