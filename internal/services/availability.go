package services

import (
	"gorm.io/gorm"

	"github.com/pequelandia/agendita/internal/store"
)

// IsAvailable reports whether a teacher is free at the exact (date, time)
// slot. Conflict detection is exact-match on the time string: classes occupy
// a single named slot, not an interval, so "10:00" and "10:30" never collide
// even though a class nominally runs longer. excludeID lets an edit skip the
// event being edited.
func IsAvailable(gdb *gorm.DB, teacher, date, tm, excludeID string) (bool, error) {
	hits, err := store.FindConflicts(gdb, teacher, date, tm, excludeID)
	if err != nil {
		return false, err
	}
	return len(hits) == 0, nil
}

// BusyMap precomputes {date -> {time -> [teachers]}} over a range so the
// calendar can mark unavailable teachers in the picker without a round trip
// per keystroke. It is a derived view over QueryRange, never a second source
// of truth: legacy records without a structured teacher field contribute via
// the "Maestro: X" line parsed out of their description.
func BusyMap(gdb *gorm.DB, from, to string) (map[string]map[string][]string, error) {
	evs, err := store.QueryRange(gdb, from, to)
	if err != nil {
		return nil, err
	}

	busy := make(map[string]map[string][]string)
	for _, ev := range evs {
		r := ev.Resolved()
		if r.Teacher == "" {
			continue
		}
		if busy[r.Date] == nil {
			busy[r.Date] = make(map[string][]string)
		}
		busy[r.Date][r.Time] = append(busy[r.Date][r.Time], r.Teacher)
	}
	return busy, nil
}
