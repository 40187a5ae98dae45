package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/pequelandia/agendita/internal/db"
	"github.com/pequelandia/agendita/internal/web"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	t.Setenv("AGENDA_DB", filepath.Join(t.TempDir(), "agendita.db"))
	if err := db.Init(); err != nil {
		t.Fatalf("db init: %v", err)
	}
	return web.Router()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestEventosLifecycle(t *testing.T) {
	h := newTestServer(t)

	create := map[string]string{
		"fecha":      "2025-03-10",
		"time":       "09:00",
		"nombreNino": "Luca",
		"clase":      "Natación",
		"maestro":    "Ana",
	}
	rec := doJSON(t, h, http.MethodPost, "/api/eventos", create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID    string `json:"_id"`
		Title string `json:"title"`
	}
	decodeBody(t, rec, &created)
	if len(created.ID) != 24 {
		t.Fatalf("expected 24-char id, got %q", created.ID)
	}
	if created.Title != "Luca - Natación" {
		t.Fatalf("expected composed title, got %q", created.Title)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/eventos/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	// Same teacher, same slot: rejected.
	rec = doJSON(t, h, http.MethodPost, "/api/eventos", create)
	if rec.Code != http.StatusConflict {
		t.Fatalf("double booking: expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	// Same teacher, next slot: fine.
	second := map[string]string{
		"fecha": "2025-03-10", "time": "10:00",
		"nombreNino": "Emma", "clase": "Lenguaje", "maestro": "Ana",
	}
	rec = doJSON(t, h, http.MethodPost, "/api/eventos", second)
	if rec.Code != http.StatusCreated {
		t.Fatalf("second create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var other struct {
		ID string `json:"_id"`
	}
	decodeBody(t, rec, &other)

	// Moving the second event onto the first one's slot is a conflict too.
	move := map[string]string{
		"fecha": "2025-03-10", "time": "09:00",
		"nombreNino": "Emma", "clase": "Lenguaje", "maestro": "Ana",
	}
	rec = doJSON(t, h, http.MethodPut, "/api/eventos/"+other.ID, move)
	if rec.Code != http.StatusConflict {
		t.Fatalf("update onto taken slot: expected 409, got %d", rec.Code)
	}

	// Re-saving an event on its own slot must not conflict with itself.
	rec = doJSON(t, h, http.MethodPut, "/api/eventos/"+created.ID, create)
	if rec.Code != http.StatusOK {
		t.Fatalf("self update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/eventos/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, h, http.MethodDelete, "/api/eventos/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", rec.Code)
	}
}

func TestEventosRangeGrouping(t *testing.T) {
	h := newTestServer(t)

	for _, ev := range []map[string]string{
		{"fecha": "2025-03-10", "time": "10:00", "nombreNino": "Emma", "clase": "Lenguaje"},
		{"fecha": "2025-03-10", "time": "09:00", "nombreNino": "Luca", "clase": "Natación"},
		{"fecha": "2025-03-11", "time": "09:00", "nombreNino": "Sofi", "clase": "Baby Spa"},
		{"fecha": "2025-03-20", "time": "09:00", "nombreNino": "Iker", "clase": "Natación"},
	} {
		if rec := doJSON(t, h, http.MethodPost, "/api/eventos", ev); rec.Code != http.StatusCreated {
			t.Fatalf("seed %v: got %d: %s", ev, rec.Code, rec.Body.String())
		}
	}

	rec := doJSON(t, h, http.MethodGet, "/api/eventos?fechaInicio=2025-03-10&fechaFin=2025-03-11", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var grouped map[string][]struct {
		ID    string `json:"_id"`
		Time  string `json:"time"`
		Title string `json:"title"`
	}
	decodeBody(t, rec, &grouped)
	if len(grouped) != 2 {
		t.Fatalf("expected 2 days, got %d: %v", len(grouped), grouped)
	}
	day := grouped["2025-03-10"]
	if len(day) != 2 {
		t.Fatalf("expected 2 events on 2025-03-10, got %d", len(day))
	}
	if day[0].Time != "09:00" || day[1].Time != "10:00" {
		t.Fatalf("day not sorted by time: %v", day)
	}
	if day[0].Title != "Luca - Natación" {
		t.Fatalf("unexpected title %q", day[0].Title)
	}

	// The stripped listing must not carry the structured columns.
	var raw map[string][]map[string]any
	decodeBody(t, rec, &raw)
	if _, ok := raw["2025-03-10"][0]["maestro"]; ok {
		t.Fatal("stripped listing leaked the maestro column")
	}

	rec = doJSON(t, h, http.MethodGet, "/api/eventos/completos?fechaInicio=2025-03-10&fechaFin=2025-03-11", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("completos: expected 200, got %d", rec.Code)
	}
	var full map[string][]map[string]any
	decodeBody(t, rec, &full)
	if full["2025-03-10"][0]["nombreNino"] != "Luca" {
		t.Fatalf("completos missing structured fields: %v", full["2025-03-10"][0])
	}
}

func TestEventosBadRequests(t *testing.T) {
	h := newTestServer(t)

	cases := []struct {
		name string
		body map[string]string
	}{
		{"missing date", map[string]string{"time": "09:00", "nombreNino": "Luca"}},
		{"missing time", map[string]string{"fecha": "2025-03-10", "nombreNino": "Luca"}},
		{"bad date shape", map[string]string{"fecha": "10/03/2025", "time": "09:00", "nombreNino": "Luca"}},
		{"bad time shape", map[string]string{"fecha": "2025-03-10", "time": "9am", "nombreNino": "Luca"}},
		{"no child and no title", map[string]string{"fecha": "2025-03-10", "time": "09:00"}},
	}
	for _, tc := range cases {
		if rec := doJSON(t, h, http.MethodPost, "/api/eventos", tc.body); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, rec.Code)
		}
	}

	if rec := doJSON(t, h, http.MethodGet, "/api/eventos/not-an-id", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed id: expected 400, got %d", rec.Code)
	}
	if rec := doJSON(t, h, http.MethodGet, "/api/eventos/aaaaaaaaaaaaaaaaaaaaaaaa", nil); rec.Code != http.StatusNotFound {
		t.Errorf("unknown id: expected 404, got %d", rec.Code)
	}
}

func TestDisponibilidadEndpoint(t *testing.T) {
	h := newTestServer(t)

	seed := map[string]string{
		"fecha": "2025-03-10", "time": "09:00",
		"nombreNino": "Luca", "clase": "Natación", "maestro": "Ana",
	}
	rec := doJSON(t, h, http.MethodPost, "/api/eventos", seed)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed: got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID string `json:"_id"`
	}
	decodeBody(t, rec, &created)

	check := func(body map[string]string) bool {
		t.Helper()
		rec := doJSON(t, h, http.MethodPost, "/api/maestros/disponibilidad", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("disponibilidad: expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			Disponible bool `json:"disponible"`
		}
		decodeBody(t, rec, &resp)
		return resp.Disponible
	}

	if check(map[string]string{"maestro": "Ana", "fecha": "2025-03-10", "time": "09:00"}) {
		t.Error("booked slot reported as available")
	}
	if !check(map[string]string{"maestro": "Ana", "fecha": "2025-03-10", "time": "10:00"}) {
		t.Error("free slot reported as busy")
	}
	if !check(map[string]string{"maestro": "Sofía", "fecha": "2025-03-10", "time": "09:00"}) {
		t.Error("other teacher reported as busy")
	}
	if !check(map[string]string{"maestro": "Ana", "fecha": "2025-03-10", "time": "09:00", "excludeId": created.ID}) {
		t.Error("event's own slot must be available when excluded")
	}

	rec = doJSON(t, h, http.MethodPost, "/api/maestros/disponibilidad", map[string]string{"maestro": "Ana"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing fields: expected 400, got %d", rec.Code)
	}
}
