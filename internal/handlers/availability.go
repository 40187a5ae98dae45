package handlers

import (
	"net/http"
	"strings"

	"github.com/pequelandia/agendita/internal/db"
	svc "github.com/pequelandia/agendita/internal/services"
)

type disponibilidadRequest struct {
	Maestro   string `json:"maestro"`
	Fecha     string `json:"fecha"`
	Time      string `json:"time"`
	ExcludeID string `json:"excludeId"`
}

type disponibilidadResponse struct {
	Disponible bool `json:"disponible"`
}

// POST /api/maestros/disponibilidad
// Exact-slot check used by the event form before submitting.
func Disponibilidad(w http.ResponseWriter, r *http.Request) {
	var req disponibilidadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}
	req.Maestro = strings.TrimSpace(req.Maestro)
	if req.Maestro == "" || req.Fecha == "" || req.Time == "" {
		writeError(w, http.StatusBadRequest, "faltan campos obligatorios (maestro, fecha, time)")
		return
	}

	ok, err := svc.IsAvailable(db.Conn(), req.Maestro, req.Fecha, req.Time, req.ExcludeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, disponibilidadResponse{Disponible: ok})
}
