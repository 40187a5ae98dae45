package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pequelandia/agendita/internal/db"
	"github.com/pequelandia/agendita/internal/models"
	svc "github.com/pequelandia/agendita/internal/services"
	"github.com/pequelandia/agendita/internal/store"
)

// strippedEvent is the historical shape of the per-day event list: enough to
// render a calendar cell. The full records live behind /api/eventos/completos.
type strippedEvent struct {
	ID          string `json:"_id"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GET /api/eventos?fechaInicio&fechaFin
// Returns {"YYYY-MM-DD": [event...]} for the inclusive range, each day sorted
// by time. Without both bounds the whole agenda comes back, as it always has.
func ListEventos(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("fechaInicio")
	to := r.URL.Query().Get("fechaFin")

	grouped, err := svc.ListEventsInRange(db.Conn(), from, to)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make(map[string][]strippedEvent, len(grouped))
	for date, evs := range grouped {
		day := make([]strippedEvent, 0, len(evs))
		for _, ev := range evs {
			day = append(day, strippedEvent{ID: ev.ID, Time: ev.Time, Title: ev.Title, Description: ev.Description})
		}
		out[date] = day
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /api/eventos/completos?fechaInicio&fechaFin
// Full records grouped by date; the calendar derives the teacher busy-map
// from this when it can, and falls back to parsing descriptions when not.
func ListEventosCompletos(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("fechaInicio")
	to := r.URL.Query().Get("fechaFin")

	grouped, err := svc.ListEventsInRange(db.Conn(), from, to)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if grouped == nil {
		grouped = map[string][]models.Event{}
	}
	writeJSON(w, http.StatusOK, grouped)
}

// POST /api/eventos
func CreateEvento(w http.ResponseWriter, r *http.Request) {
	var in svc.EventInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}
	ev, err := svc.CreateEvent(db.Conn(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ev)
}

// GET /api/eventos/{id}
func GetEvento(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(w, id) {
		return
	}
	ev, err := store.FindEventByID(db.Conn(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

// PUT /api/eventos/{id}
func UpdateEvento(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(w, id) {
		return
	}
	var in svc.EventInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}
	ev, err := svc.UpdateEvent(db.Conn(), id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

// DELETE /api/eventos/{id}
func DeleteEvento(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(w, id) {
		return
	}
	if err := svc.DeleteEvent(db.Conn(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Evento eliminado correctamente"})
}
