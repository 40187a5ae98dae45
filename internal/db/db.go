package db

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pequelandia/agendita/internal/models"
)

var conn *gorm.DB

func dbPath() string {
	if p := os.Getenv("AGENDA_DB"); p != "" {
		return p
	}
	return "agendita.db"
}

func Init() error {
	var err error
	conn, err = gorm.Open(sqlite.Open(dbPath()+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(
		&models.Event{},
		&models.Peque{},
		&models.Maestro{},
		&models.Producto{},
		&models.User{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}

	// Composite indexes that GORM doesn't auto-create from struct tags.
	// The unique slot index is the backstop for the availability pre-check:
	// two requests racing past the check still cannot both commit the same
	// (date, time, teacher) slot.
	conn.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_event_slot   ON events(date, time, teacher) WHERE teacher <> ''")
	conn.Exec("CREATE INDEX        IF NOT EXISTS idx_event_range  ON events(date, time)")

	log.Println("database ready (sqlite)")
	return nil
}

func Conn() *gorm.DB {
	return conn
}
