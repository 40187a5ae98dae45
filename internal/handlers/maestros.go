package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pequelandia/agendita/internal/db"
	"github.com/pequelandia/agendita/internal/models"
	"github.com/pequelandia/agendita/internal/store"
)

type maestroRequest struct {
	Name  string `json:"nombreCompleto" validate:"required"`
	Age   string `json:"edad" validate:"required"`
	Phone string `json:"celular" validate:"required,len=10,numeric"`
}

func (req *maestroRequest) check() (string, bool) {
	req.Name = strings.TrimSpace(req.Name)
	req.Age = strings.TrimSpace(req.Age)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := validate.Struct(req); err != nil {
		return validationMessage(err), false
	}
	return "", true
}

// GET /api/maestros — the active teachers, the source of valid assignment
// names for the event form. Not enforced as a foreign key at event write
// time; the calendar only uses it to populate the picker.
func ListMaestros(w http.ResponseWriter, r *http.Request) {
	maestros, err := store.ListActiveMaestros(db.Conn())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, maestros)
}

// POST /api/maestros
func CreateMaestro(w http.ResponseWriter, r *http.Request) {
	var req maestroRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}
	if msg, ok := req.check(); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	m := models.Maestro{Name: req.Name, Age: req.Age, Phone: req.Phone}
	if err := store.CreateMaestro(db.Conn(), &m); err != nil {
		if err == store.ErrConflict {
			writeError(w, http.StatusConflict, fmt.Sprintf("ya existe un maestro registrado con el nombre %q", m.Name))
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// GET /api/maestros/{id}
func GetMaestro(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(w, id) {
		return
	}
	m, err := store.FindMaestroByID(db.Conn(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// PUT /api/maestros/{id}
func UpdateMaestro(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(w, id) {
		return
	}
	var req maestroRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}
	if msg, ok := req.check(); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	m, err := store.FindMaestroByID(db.Conn(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	m.Name, m.Age, m.Phone = req.Name, req.Age, req.Phone
	if err := store.UpdateMaestro(db.Conn(), &m); err != nil {
		if err == store.ErrConflict {
			writeError(w, http.StatusConflict, fmt.Sprintf("ya existe un maestro registrado con el nombre %q", m.Name))
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// DELETE /api/maestros/{id} — soft delete.
func DeleteMaestro(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(w, id) {
		return
	}
	if err := store.DeactivateMaestro(db.Conn(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Maestro eliminado correctamente"})
}
