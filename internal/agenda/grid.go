// Package agenda holds the pure calendar transforms: flat event lists in,
// presentation-ready week/month structures out. No storage, no side effects.
package agenda

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pequelandia/agendita/internal/models"
)

const dateKeyLayout = "2006-01-02"

// DateKey is the grouping/partition key for a calendar date.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// Day is one rendered calendar cell.
type Day struct {
	Date       time.Time
	Key        string // "2006-01-02"
	Today      bool
	OtherMonth bool
	Events     []models.Event
}

// WeekGrid returns exactly six Monday-anchored day buckets (Mon..Sat — the
// center is closed on Sundays) for the week at now + weekOffset*7 days.
// On a Sunday the anchor lands on the next day's Monday, so the "current
// week" is the one about to start.
func WeekGrid(grouped map[string][]models.Event, weekOffset int, now time.Time) []Day {
	monday := now.AddDate(0, 0, 1-int(now.Weekday())+7*weekOffset)

	days := make([]Day, 0, 6)
	for i := 0; i < 6; i++ {
		d := monday.AddDate(0, 0, i)
		key := DateKey(d)
		days = append(days, Day{
			Date:   d,
			Key:    key,
			Today:  key == DateKey(now),
			Events: sortedByTime(grouped[key]),
		})
	}
	return days
}

// MonthGrid returns the fixed 6x7 = 42 cells for a month view, starting on
// the Monday on/before the 1st. Cells outside the target month are flagged
// OtherMonth but still carry their events.
func MonthGrid(grouped map[string][]models.Event, year int, month time.Month, now time.Time) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	back := (int(first.Weekday()) + 6) % 7 // days back to Monday
	start := first.AddDate(0, 0, -back)

	cells := make([]Day, 0, 42)
	for i := 0; i < 42; i++ {
		d := start.AddDate(0, 0, i)
		key := DateKey(d)
		cells = append(cells, Day{
			Date:       d,
			Key:        key,
			Today:      key == DateKey(now),
			OtherMonth: d.Month() != month,
			Events:     sortedByTime(grouped[key]),
		})
	}
	return cells
}

// MonthSection is one calendar month of a report, events in (date, time) order.
type MonthSection struct {
	Year   int
	Month  time.Month
	Events []models.Event
}

// MonthlySections partitions events with from <= date <= to into chronological
// month buckets, for reports and the spreadsheet mirror.
func MonthlySections(events []models.Event, from, to string) []MonthSection {
	var kept []models.Event
	for _, ev := range events {
		if ev.Date >= from && ev.Date <= to {
			kept = append(kept, ev)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Date != kept[j].Date {
			return kept[i].Date < kept[j].Date
		}
		return kept[i].Time < kept[j].Time
	})

	var out []MonthSection
	for _, ev := range kept {
		y, m, ok := yearMonth(ev.Date)
		if !ok {
			continue
		}
		if len(out) == 0 || out[len(out)-1].Year != y || out[len(out)-1].Month != m {
			out = append(out, MonthSection{Year: y, Month: m})
		}
		out[len(out)-1].Events = append(out[len(out)-1].Events, ev)
	}
	return out
}

// FormatTime12 turns 24-hour "HH:MM" into a 12-hour wall-clock string:
// "00:00" -> "12:00 AM", "13:30" -> "1:30 PM". Malformed input is returned
// as-is rather than dropped, matching how the old calendar rendered it.
func FormatTime12(hhmm string) string {
	hs, ms, ok := strings.Cut(hhmm, ":")
	if !ok {
		return hhmm
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 || h > 23 {
		return hhmm
	}
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h
	if h > 12 {
		h12 = h - 12
	} else if h == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%s %s", h12, ms, period)
}

func sortedByTime(events []models.Event) []models.Event {
	if len(events) < 2 {
		return events
	}
	out := make([]models.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

func yearMonth(date string) (int, time.Month, bool) {
	t, err := time.Parse(dateKeyLayout, date)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}
