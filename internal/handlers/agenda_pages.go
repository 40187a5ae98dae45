package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/pequelandia/agendita/internal/agenda"
	"github.com/pequelandia/agendita/internal/db"
	svc "github.com/pequelandia/agendita/internal/services"
)

var diasSemana = [6]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

var meses = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// GET /agenda?semana=N — the six-day week view.
func AgendaSemana(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("semana"))
		now := time.Now()

		// First pass gives the week's date keys, second fills the buckets.
		days := agenda.WeekGrid(nil, offset, now)
		grouped, err := svc.ListEventsInRange(db.Conn(), days[0].Key, days[5].Key)
		if err != nil {
			http.Error(w, "error interno del servidor", http.StatusInternalServerError)
			return
		}
		days = agenda.WeekGrid(grouped, offset, now)

		view, err := t.Clone()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := view.ParseFiles("templates/pages/agenda_semana.tmpl"); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = view.ExecuteTemplate(w, "agenda_semana.tmpl", map[string]any{
			"Title":      "Agenda Semanal",
			"Days":       days,
			"DayNames":   diasSemana,
			"Offset":     offset,
			"PrevOffset": offset - 1,
			"NextOffset": offset + 1,
		})
	}
}

// GET /agenda/mes?year=YYYY&month=M — the 42-cell month view.
func AgendaMes(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		year, _ := strconv.Atoi(r.URL.Query().Get("year"))
		month, _ := strconv.Atoi(r.URL.Query().Get("month"))
		if year == 0 {
			year = now.Year()
		}
		if month < 1 || month > 12 {
			month = int(now.Month())
		}

		first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		grouped, err := svc.ListEventsInRange(db.Conn(), agenda.DateKey(first), agenda.DateKey(last))
		if err != nil {
			http.Error(w, "error interno del servidor", http.StatusInternalServerError)
			return
		}
		cells := agenda.MonthGrid(grouped, year, time.Month(month), now)

		prev := first.AddDate(0, -1, 0)
		next := first.AddDate(0, 1, 0)

		view, err := t.Clone()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := view.ParseFiles("templates/pages/agenda_mes.tmpl"); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = view.ExecuteTemplate(w, "agenda_mes.tmpl", map[string]any{
			"Title":     "Agenda Mensual",
			"Cells":     cells,
			"MonthName": meses[month-1],
			"Year":      year,
			"PrevYear":  prev.Year(),
			"PrevMonth": int(prev.Month()),
			"NextYear":  next.Year(),
			"NextMonth": int(next.Month()),
		})
	}
}

// GET /login
func LoginForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := t.Clone()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := view.ParseFiles("templates/pages/login.tmpl"); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = view.ExecuteTemplate(w, "login.tmpl", map[string]any{
			"Title": "Iniciar sesión",
			"Next":  r.URL.Query().Get("next"),
			"Error": r.URL.Query().Get("error"),
		})
	}
}

// POST /login (form variant of /auth/login, for the pages)
func LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	u, err := authenticate(r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		http.Redirect(w, r, "/login?error=credenciales", http.StatusSeeOther)
		return
	}

	sess, _ := sessionStore.Get(r, sessionName)
	sess.Values["user_id"] = u.ID
	sess.Values["username"] = u.Username
	sess.Values["role"] = u.Role
	_ = sess.Save(r, w)

	next := r.FormValue("next")
	if next == "" {
		next = "/agenda"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}
