package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/pequelandia/agendita/internal/agenda"
	"github.com/pequelandia/agendita/internal/store"
)

// The spreadsheet is a best-effort mirror of the agenda, never the source of
// truth. Sync runs after a successful mutation, is never awaited, never
// retried, and its failures are logged only.

var sheetClient = &http.Client{Timeout: 10 * time.Second}

type sheetRow struct {
	Fecha   string `json:"fecha"`
	Hora    string `json:"hora"` // 12-hour display form
	Titulo  string `json:"titulo"`
	Clase   string `json:"clase"`
	Maestro string `json:"maestro"`
	Color   string `json:"color"`
}

type sheetSection struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Rows  []sheetRow `json:"rows"`
}

// SyncMonthToSheet mirrors the calendar month containing date to the sheet
// webhook, in a goroutine. No-op when SHEET_WEBHOOK_URL is unset.
func SyncMonthToSheet(gdb *gorm.DB, date string) {
	url := os.Getenv("SHEET_WEBHOOK_URL")
	if url == "" {
		return
	}
	go func() {
		if err := pushMonth(gdb, url, date); err != nil {
			log.Printf("sheet sync for %s: %v", date, err)
		}
	}()
}

// pushMonth builds the month report for the month containing date and POSTs
// it. Split out of the goroutine so tests can call it synchronously.
func pushMonth(gdb *gorm.DB, url, date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("bad date %q: %w", date, err)
	}
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	from, to := agenda.DateKey(first), agenda.DateKey(last)

	evs, err := store.QueryRange(gdb, from, to)
	if err != nil {
		return err
	}

	payload := struct {
		Sections []sheetSection `json:"sections"`
	}{Sections: []sheetSection{}}
	for _, sec := range agenda.MonthlySections(evs, from, to) {
		rows := make([]sheetRow, 0, len(sec.Events))
		for _, ev := range sec.Events {
			r := ev.Resolved()
			rows = append(rows, sheetRow{
				Fecha:   r.Date,
				Hora:    agenda.FormatTime12(r.Time),
				Titulo:  r.Title,
				Clase:   r.Class,
				Maestro: r.Teacher,
				Color:   agenda.ClassColor(r.Class),
			})
		}
		payload.Sections = append(payload.Sections, sheetSection{
			Year:  sec.Year,
			Month: int(sec.Month),
			Rows:  rows,
		})
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := sheetClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sheet webhook: %s", resp.Status)
	}
	return nil
}
