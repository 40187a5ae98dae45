package services

import (
	"testing"

	"github.com/pequelandia/agendita/internal/models"
	"github.com/pequelandia/agendita/internal/store"
)

func TestIsAvailable(t *testing.T) {
	gdb := openTestDB(t)
	ev, err := CreateEvent(gdb, EventInput{Date: "2024-03-10", Time: "10:00", ChildName: "Sofía", Teacher: "Ana"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := IsAvailable(gdb, "Ana", "2024-03-10", "10:00", "")
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if ok {
		t.Errorf("Ana is booked at 10:00, want unavailable")
	}

	// Excluding the booked event itself frees the slot (edit path).
	ok, _ = IsAvailable(gdb, "Ana", "2024-03-10", "10:00", ev.ID)
	if !ok {
		t.Errorf("excluding the event's own id must report available")
	}

	// Other teacher, other time, other date: all free.
	for _, c := range []struct{ teacher, date, tm string }{
		{"Beatriz", "2024-03-10", "10:00"},
		{"Ana", "2024-03-10", "10:30"},
		{"Ana", "2024-03-11", "10:00"},
	} {
		ok, _ := IsAvailable(gdb, c.teacher, c.date, c.tm, "")
		if !ok {
			t.Errorf("(%s, %s, %s) should be available", c.teacher, c.date, c.tm)
		}
	}
}

func TestBusyMap(t *testing.T) {
	gdb := openTestDB(t)
	seed := []EventInput{
		{Date: "2024-03-10", Time: "10:00", ChildName: "Sofía", Teacher: "Ana"},
		{Date: "2024-03-10", Time: "10:00", ChildName: "Mateo", Teacher: "Beatriz"},
		{Date: "2024-03-11", Time: "09:00", ChildName: "Lucas", Teacher: "Ana"},
		{Date: "2024-03-11", Time: "12:00", ChildName: "Emma"}, // no teacher
	}
	for _, in := range seed {
		if _, err := CreateEvent(gdb, in); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	busy, err := BusyMap(gdb, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("BusyMap: %v", err)
	}

	slot := busy["2024-03-10"]["10:00"]
	if len(slot) != 2 {
		t.Fatalf("2024-03-10 10:00: want 2 teachers, got %v", slot)
	}
	if busy["2024-03-11"]["09:00"][0] != "Ana" {
		t.Errorf("2024-03-11 09:00: want Ana, got %v", busy["2024-03-11"]["09:00"])
	}
	if _, ok := busy["2024-03-11"]["12:00"]; ok {
		t.Errorf("teacherless event must not appear in the busy map")
	}
}

// Legacy records keep the teacher only inside the description; the busy map
// must still see them.
func TestBusyMap_LegacyDescriptionFallback(t *testing.T) {
	gdb := openTestDB(t)
	legacy := models.Event{
		Date:        "2024-03-10",
		Time:        "10:00",
		Title:       "Sofía - CEMS",
		Description: "Maestro: Ana\nTel: 5512345678",
	}
	if err := store.CreateEvent(gdb, &legacy); err != nil {
		t.Fatalf("seed legacy: %v", err)
	}

	busy, err := BusyMap(gdb, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("BusyMap: %v", err)
	}
	got := busy["2024-03-10"]["10:00"]
	if len(got) != 1 || got[0] != "Ana" {
		t.Errorf("legacy teacher not derived from description, got %v", got)
	}
}
