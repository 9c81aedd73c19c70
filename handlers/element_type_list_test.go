package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"quantitytakeoff/takeoff"
	"quantitytakeoff/testhelpers"
)

func TestHandleElementTypeList_ComputedQuantities(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Vivienda")
	testhelpers.CreateTestElementType(t, app, proj.Id, "IfcWallStandardCase", "Muro 30", takeoff.UnitArea)

	engines := NewEngineSet()
	engines.For(proj.Id).SetModel(testhelpers.TestModel())
	handler := HandleElementTypeList(app, engines)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.SetPathValue("id", proj.Id)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ElementTypes []elementTypeResponse `json:"elementTypes"`
		Total        float64               `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.ElementTypes) != 1 {
		t.Fatalf("expected 1 line, got %d", len(resp.ElementTypes))
	}

	line := resp.ElementTypes[0]
	// One authoritative wall (14.5) plus one geometric fallback (0.9).
	if math.Abs(line.Quantity-15.4) > 1e-9 {
		t.Errorf("quantity = %v, want 15.4", line.Quantity)
	}
	if line.UnitSymbol != "m²" {
		t.Errorf("unit symbol = %q, want m²", line.UnitSymbol)
	}
	if math.Abs(line.Amount-15.4*25.0) > 1e-9 {
		t.Errorf("amount = %v, want %v", line.Amount, 15.4*25.0)
	}
	if math.Abs(resp.Total-line.Amount) > 1e-9 {
		t.Errorf("total = %v, want %v", resp.Total, line.Amount)
	}
}

func TestHandleElementTypeList_ManualQuantity(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Vivienda")
	rec := testhelpers.CreateTestElementType(t, app, proj.Id, "IfcSlab", "Solera", takeoff.UnitVolume)
	rec.Set("is_manual", true)
	rec.Set("manual_quantity", 7.25)
	if err := app.Save(rec); err != nil {
		t.Fatalf("save manual line: %v", err)
	}

	// No model loaded; manual lines do not need one.
	handler := HandleElementTypeList(app, NewEngineSet())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.SetPathValue("id", proj.Id)
	w := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, w)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		ElementTypes []elementTypeResponse `json:"elementTypes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.ElementTypes) != 1 {
		t.Fatalf("expected 1 line, got %d", len(resp.ElementTypes))
	}
	if got := resp.ElementTypes[0].Quantity; got != 7.25 {
		t.Errorf("manual quantity = %v, want 7.25", got)
	}
}

func TestHandleElementTypeList_UnknownProject(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleElementTypeList(app, NewEngineSet())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
