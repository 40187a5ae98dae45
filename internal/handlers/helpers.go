// Package handlers translates HTTP requests to and from the service layer.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"

	"github.com/pequelandia/agendita/internal/services"
	"github.com/pequelandia/agendita/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeServiceError maps the error taxonomy onto HTTP statuses. Store
// failures keep their detail in the server log and leave with a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "no encontrado")
	default:
		log.Printf("store error: %v", err)
		writeError(w, http.StatusInternalServerError, "error interno del servidor")
	}
}

var reObjectID = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// validID gates the 24-hex id shape before any lookup, answering 400 itself
// when the shape is wrong.
func validID(w http.ResponseWriter, id string) bool {
	if !reObjectID.MatchString(id) {
		writeError(w, http.StatusBadRequest, "ID no válido")
		return false
	}
	return true
}
