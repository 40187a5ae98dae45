package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/datatypes"

	"github.com/pequelandia/agendita/internal/db"
	"github.com/pequelandia/agendita/internal/models"
	"github.com/pequelandia/agendita/internal/store"
)

// The recommended service catalog. Events' class tags are open strings, but
// the enrollment form's service subscriptions are validated against this set
// when provided.
var serviciosPermitidos = []string{
	"Natación",
	"Estimulación",
	"Baby Spa",
	"Paquete de Acuática Inicial y Estimulación temprana",
	"Lenguaje",
}

// Only the name is required; everything else loosened over time and older
// records must keep passing.
type pequeRequest struct {
	Name            string   `json:"nombreCompleto" validate:"required"`
	BirthDate       string   `json:"fechaNacimiento" validate:"omitempty,datetime=2006-01-02"`
	Age             string   `json:"edad"`
	Behavior        string   `json:"comportamiento" validate:"omitempty,oneof=neurotipico neurodivergente"`
	Characteristics string   `json:"caracteristicas"`
	BloodType       string   `json:"tipoSangre"`
	Allergies       string   `json:"alergias"`
	Services        []string `json:"servicios"`
	Tutor1Name      string   `json:"nombreTutor1"`
	Tutor1Phone     string   `json:"celularTutor1" validate:"omitempty,len=10,numeric"`
	Tutor1Email     string   `json:"correoTutor1" validate:"omitempty,email"`
	Tutor2Name      string   `json:"nombreTutor2"`
	Tutor2Phone     string   `json:"celularTutor2" validate:"omitempty,len=10,numeric"`
	Tutor2Email     string   `json:"correoTutor2" validate:"omitempty,email"`
	PayDay          *int     `json:"fechaPago" validate:"omitempty,min=1,max=31"`
}

func (req *pequeRequest) check() (string, bool) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return validationMessage(err), false
	}
	if req.BirthDate != "" {
		d, _ := time.Parse("2006-01-02", req.BirthDate)
		if d.After(time.Now()) {
			return "la fecha de nacimiento no puede ser futura", false
		}
	}
	var invalid []string
	for _, s := range req.Services {
		if !contains(serviciosPermitidos, s) {
			invalid = append(invalid, s)
		}
	}
	if len(invalid) > 0 {
		return "servicios no válidos: " + strings.Join(invalid, ", "), false
	}
	return "", true
}

func (req *pequeRequest) apply(p *models.Peque) {
	p.Name = req.Name
	p.BirthDate = nil
	if req.BirthDate != "" {
		d, _ := time.Parse("2006-01-02", req.BirthDate)
		p.BirthDate = &d
	}
	p.Age = strings.TrimSpace(req.Age)
	p.Behavior = req.Behavior
	p.Characteristics = strings.TrimSpace(req.Characteristics)
	p.BloodType = strings.TrimSpace(req.BloodType)
	p.Allergies = strings.TrimSpace(req.Allergies)
	p.Services = datatypes.NewJSONSlice(req.Services)
	p.Tutor1Name = strings.TrimSpace(req.Tutor1Name)
	p.Tutor1Phone = strings.TrimSpace(req.Tutor1Phone)
	p.Tutor1Email = strings.TrimSpace(req.Tutor1Email)
	p.Tutor2Name = strings.TrimSpace(req.Tutor2Name)
	p.Tutor2Phone = strings.TrimSpace(req.Tutor2Phone)
	p.Tutor2Email = strings.TrimSpace(req.Tutor2Email)
	p.PayDay = req.PayDay
}

// GET /api/peques — active records only, for listings and name autofill.
func ListPeques(w http.ResponseWriter, r *http.Request) {
	peques, err := store.ListActivePeques(db.Conn())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, peques)
}

// POST /api/peques
func CreatePeque(w http.ResponseWriter, r *http.Request) {
	var req pequeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}
	if msg, ok := req.check(); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var p models.Peque
	req.apply(&p)
	if err := store.CreatePeque(db.Conn(), &p); err != nil {
		if err == store.ErrConflict {
			writeError(w, http.StatusConflict, fmt.Sprintf("ya existe un niño registrado con el nombre %q", p.Name))
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// GET /api/peques/{id}
func GetPeque(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(w, id) {
		return
	}
	p, err := store.FindPequeByID(db.Conn(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// PUT /api/peques/{id}
func UpdatePeque(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(w, id) {
		return
	}
	var req pequeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}
	if msg, ok := req.check(); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	p, err := store.FindPequeByID(db.Conn(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	req.apply(&p)
	if err := store.UpdatePeque(db.Conn(), &p); err != nil {
		if err == store.ErrConflict {
			writeError(w, http.StatusConflict, fmt.Sprintf("ya existe un niño registrado con el nombre %q", p.Name))
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DELETE /api/peques/{id} — soft delete: the record stays for history.
func DeletePeque(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(w, id) {
		return
	}
	if err := store.DeactivatePeque(db.Conn(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Niño eliminado correctamente"})
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
