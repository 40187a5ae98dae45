// Package store is the persistence layer: plain functions over an explicit
// *gorm.DB so callers can pass either the shared connection or a transaction.
package store

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pequelandia/agendita/internal/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// NewID returns a 24-character lowercase hex id, the shape the API contract
// requires for records (and the handlers gate on).
func NewID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		panic("store: rand.Read: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// CreateEvent assigns an id and persists the event. A unique-index violation
// on the (date, time, teacher) slot surfaces as ErrConflict.
func CreateEvent(gdb *gorm.DB, ev *models.Event) error {
	if ev.ID == "" {
		ev.ID = NewID()
	}
	if err := gdb.Create(ev).Error; err != nil {
		return translate(err)
	}
	return nil
}

// UpdateEvent saves the full record. The caller loads it first, so a missing
// row here means it was deleted underneath us.
func UpdateEvent(gdb *gorm.DB, ev *models.Event) error {
	// Not gdb.Save: Save re-creates the row when the update matches nothing,
	// which would resurrect a concurrently deleted event.
	res := gdb.Model(&models.Event{}).Where("id = ?", ev.ID).
		Select("*").Omit("id", "created_at").Updates(ev)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEvent hard-deletes. Deleting an unknown id is ErrNotFound, never a
// silent success.
func DeleteEvent(gdb *gorm.DB, id string) error {
	res := gdb.Delete(&models.Event{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func FindEventByID(gdb *gorm.DB, id string) (models.Event, error) {
	var ev models.Event
	if err := gdb.First(&ev, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, err
	}
	return ev, nil
}

// QueryRange returns events with from <= date <= to (inclusive string bounds;
// zero-padded ISO dates make lexicographic order chronological), ascending by
// (date, time) so results are deterministic.
func QueryRange(gdb *gorm.DB, from, to string) ([]models.Event, error) {
	var evs []models.Event
	q := gdb.Order("date ASC, time ASC")
	if from != "" && to != "" {
		q = q.Where("date >= ? AND date <= ?", from, to)
	}
	if err := q.Find(&evs).Error; err != nil {
		return nil, err
	}
	return evs, nil
}

// FindConflicts returns events occupying the exact (teacher, date, time)
// slot, excluding excludeID so an edit never conflicts with itself.
func FindConflicts(gdb *gorm.DB, teacher, date, tm, excludeID string) ([]models.Event, error) {
	var evs []models.Event
	q := gdb.Where("teacher = ? AND date = ? AND time = ?", teacher, date, tm)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Find(&evs).Error; err != nil {
		return nil, err
	}
	return evs, nil
}

// translate maps the SQLite unique-violation error onto ErrConflict so the
// service layer sees one conflict error regardless of whether the pre-check
// or the backstop index caught it.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrConflict
	}
	return err
}
