// Package services holds the business logic between the HTTP handlers and the
// store. Functions take an explicit *gorm.DB so they run the same against the
// shared connection, a transaction, or a test database.
package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/pequelandia/agendita/internal/models"
	"github.com/pequelandia/agendita/internal/store"
)

var (
	ErrValidation = errors.New("validación")

	reDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reTime = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// EventInput is the mutation payload for an agenda event. Field names on the
// wire are the Spanish ones the calendar pages have always sent.
type EventInput struct {
	Date            string `json:"fecha"`
	Time            string `json:"time"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ChildName       string `json:"nombreNino"`
	Class           string `json:"clase"`
	Teacher         string `json:"maestro"`
	Characteristics string `json:"caracteristicas"`
	GuardianName    string `json:"nombreTutor"`
	GuardianPhone   string `json:"celularTutor"`
	OwnerID         string `json:"userId"`
}

func (in *EventInput) normalize() {
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Title = strings.TrimSpace(in.Title)
	in.ChildName = strings.TrimSpace(in.ChildName)
	in.Class = strings.TrimSpace(in.Class)
	in.Teacher = strings.TrimSpace(in.Teacher)
	in.GuardianName = strings.TrimSpace(in.GuardianName)
	in.GuardianPhone = strings.TrimSpace(in.GuardianPhone)
}

// validate enforces what the store itself never did: date and time are always
// required and well-formed, and the event needs at least a title or a child
// name. Everything else stayed optional as the registration form loosened
// over the years, so older records keep loading.
func (in *EventInput) validate() error {
	if in.Date == "" || in.Time == "" {
		return fmt.Errorf("%w: faltan campos obligatorios (fecha, time)", ErrValidation)
	}
	if !reDate.MatchString(in.Date) {
		return fmt.Errorf("%w: fecha debe tener formato YYYY-MM-DD", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fmt.Errorf("%w: fecha no válida", ErrValidation)
	}
	if !reTime.MatchString(in.Time) {
		return fmt.Errorf("%w: time debe tener formato HH:MM", ErrValidation)
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return fmt.Errorf("%w: hora no válida", ErrValidation)
	}
	if in.Title == "" && in.ChildName == "" {
		return fmt.Errorf("%w: faltan campos obligatorios (title)", ErrValidation)
	}
	return nil
}

// title composes the legacy "<niño> - <clase>" form when the caller sent only
// structured fields.
func (in *EventInput) title() string {
	if in.Title != "" {
		return in.Title
	}
	if in.Class != "" {
		return in.ChildName + " - " + in.Class
	}
	return in.ChildName
}

// CreateEvent validates, runs the availability pre-check when a teacher is
// assigned, and persists. The pre-check and the write are deliberately not
// one transaction: at this center's load the window is negligible, and the
// store's unique slot index catches anything that slips through, surfacing
// as the same ErrConflict. On success the month is mirrored to the sheet,
// fire-and-forget.
func CreateEvent(gdb *gorm.DB, in EventInput) (models.Event, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return models.Event{}, err
	}

	if in.Teacher != "" {
		ok, err := IsAvailable(gdb, in.Teacher, in.Date, in.Time, "")
		if err != nil {
			return models.Event{}, err
		}
		if !ok {
			return models.Event{}, fmt.Errorf("%w: el maestro %s ya tiene un evento el %s a las %s",
				store.ErrConflict, in.Teacher, in.Date, in.Time)
		}
	}

	ev := models.Event{
		Date:            in.Date,
		Time:            in.Time,
		Title:           in.title(),
		Description:     in.Description,
		ChildName:       in.ChildName,
		Class:           in.Class,
		Teacher:         in.Teacher,
		Characteristics: in.Characteristics,
		GuardianName:    in.GuardianName,
		GuardianPhone:   in.GuardianPhone,
		OwnerID:         in.OwnerID,
	}
	if err := store.CreateEvent(gdb, &ev); err != nil {
		return models.Event{}, err
	}

	SyncMonthToSheet(gdb, ev.Date)
	return ev, nil
}

// UpdateEvent replaces every mutable field of an existing event, excluding
// the event's own id from the conflict check so saving unchanged values never
// self-conflicts.
func UpdateEvent(gdb *gorm.DB, id string, in EventInput) (models.Event, error) {
	ev, err := store.FindEventByID(gdb, id)
	if err != nil {
		return models.Event{}, err
	}

	in.normalize()
	if err := in.validate(); err != nil {
		return models.Event{}, err
	}

	if in.Teacher != "" {
		ok, err := IsAvailable(gdb, in.Teacher, in.Date, in.Time, id)
		if err != nil {
			return models.Event{}, err
		}
		if !ok {
			return models.Event{}, fmt.Errorf("%w: el maestro %s ya tiene un evento el %s a las %s",
				store.ErrConflict, in.Teacher, in.Date, in.Time)
		}
	}

	ev.Date = in.Date
	ev.Time = in.Time
	ev.Title = in.title()
	ev.Description = in.Description
	ev.ChildName = in.ChildName
	ev.Class = in.Class
	ev.Teacher = in.Teacher
	ev.Characteristics = in.Characteristics
	ev.GuardianName = in.GuardianName
	ev.GuardianPhone = in.GuardianPhone
	if err := store.UpdateEvent(gdb, &ev); err != nil {
		return models.Event{}, err
	}

	SyncMonthToSheet(gdb, ev.Date)
	return ev, nil
}

// DeleteEvent hard-deletes. Repeat deletion reports ErrNotFound; callers must
// surface it rather than pretend success.
func DeleteEvent(gdb *gorm.DB, id string) error {
	ev, err := store.FindEventByID(gdb, id)
	if err != nil {
		return err
	}
	if err := store.DeleteEvent(gdb, id); err != nil {
		return err
	}
	SyncMonthToSheet(gdb, ev.Date)
	return nil
}

// ListEventsInRange groups the inclusive range query by date key. Within each
// day the store order (time ascending) is preserved.
func ListEventsInRange(gdb *gorm.DB, from, to string) (map[string][]models.Event, error) {
	evs, err := store.QueryRange(gdb, from, to)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]models.Event, len(evs))
	for _, ev := range evs {
		grouped[ev.Date] = append(grouped[ev.Date], ev)
	}
	return grouped, nil
}
