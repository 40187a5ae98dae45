package web

import (
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pequelandia/agendita/internal/agenda"
	"github.com/pequelandia/agendita/internal/handlers"
)

func Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	tmpl := mustParseTemplates("templates")

	r.Get("/health", handlers.Health)

	// Auth (JSON)
	r.Post("/auth/register", handlers.Register)
	r.Post("/auth/login", handlers.Login)

	// Server-rendered calendar pages, behind the session gate
	r.Get("/login", handlers.LoginForm(tmpl))
	r.Post("/login", handlers.LoginSubmit)
	r.Get("/logout", handlers.Logout)
	r.Group(func(pg chi.Router) {
		pg.Use(handlers.RequireSession)
		pg.Get("/agenda", handlers.AgendaSemana(tmpl))
		pg.Get("/agenda/mes", handlers.AgendaMes(tmpl))
	})

	r.Route("/api", func(api chi.Router) {
		// Agenda core
		api.Get("/eventos", handlers.ListEventos)
		api.Post("/eventos", handlers.CreateEvento)
		api.Get("/eventos/completos", handlers.ListEventosCompletos)
		api.Get("/eventos/{id}", handlers.GetEvento)
		api.Put("/eventos/{id}", handlers.UpdateEvento)
		api.Delete("/eventos/{id}", handlers.DeleteEvento)

		api.Post("/maestros/disponibilidad", handlers.Disponibilidad)

		// Roster collaborators
		api.Get("/peques", handlers.ListPeques)
		api.Post("/peques", handlers.CreatePeque)
		api.Get("/peques/{id}", handlers.GetPeque)
		api.Put("/peques/{id}", handlers.UpdatePeque)
		api.Delete("/peques/{id}", handlers.DeletePeque)

		api.Get("/maestros", handlers.ListMaestros)
		api.Post("/maestros", handlers.CreateMaestro)
		api.Get("/maestros/{id}", handlers.GetMaestro)
		api.Put("/maestros/{id}", handlers.UpdateMaestro)
		api.Delete("/maestros/{id}", handlers.DeleteMaestro)

		api.Get("/productos", handlers.ListProductos)
		api.Post("/productos", handlers.CreateProducto)
		api.Get("/productos/{id}", handlers.GetProducto)
		api.Put("/productos/{id}", handlers.UpdateProducto)
		api.Delete("/productos/{id}", handlers.DeleteProducto)
	})

	return r
}

func mustParseTemplates(baseDir string) *template.Template {
	funcs := template.FuncMap{
		"year":       func() string { return time.Now().Format("2006") },
		"hora12":     agenda.FormatTime12,
		"claseColor": agenda.ClassColor,
		"diaCorto":   func(t time.Time) string { return t.Format("02") },
	}

	p := template.New("").Funcs(funcs)
	// Layouts are optional so the API can run (and be tested) without the
	// template tree in the working directory.
	if files, _ := filepath.Glob(filepath.Join(baseDir, "layouts", "*.tmpl")); len(files) > 0 {
		p = template.Must(p.ParseFiles(files...))
	}
	return p
}
