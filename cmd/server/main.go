package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/pequelandia/agendita/internal/db"
	"github.com/pequelandia/agendita/internal/web"
)

func main() {
	// .env is optional; real deployments export the variables directly.
	_ = godotenv.Load()

	// Init DB (creates agendita.db in working dir unless AGENDA_DB is set)
	if err := db.Init(); err != nil {
		log.Fatalf("db init: %v", err)
	}

	r := web.Router()

	addr := getEnv("ADDR", ":8080")
	log.Printf("agendita listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
