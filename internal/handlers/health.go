package handlers

import (
	"net/http"
	"time"

	"github.com/pequelandia/agendita/internal/db"
)

// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if sqlDB, err := db.Conn().DB(); err != nil || sqlDB.Ping() != nil {
		database = "disconnected"
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  database,
	})
}
