package web

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/pequelandia/agendita/internal/db"
)

func TestRouterHealth(t *testing.T) {
	t.Setenv("AGENDA_DB", filepath.Join(t.TempDir(), "agendita.db"))
	if err := db.Init(); err != nil {
		t.Fatalf("db init: %v", err)
	}
	r := Router()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAgendaPagesRequireSession(t *testing.T) {
	t.Setenv("AGENDA_DB", filepath.Join(t.TempDir(), "agendita.db"))
	if err := db.Init(); err != nil {
		t.Fatalf("db init: %v", err)
	}
	r := Router()
	for _, path := range []string{"/agenda", "/agenda/mes"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("%s: expected redirect to login, got %d", path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/login?next="+path {
			t.Fatalf("%s: unexpected redirect target %q", path, loc)
		}
	}
}
