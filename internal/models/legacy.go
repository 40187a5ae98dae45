package models

import "strings"

// Older records carry everything inside Title ("<niño> - <clase>") and a
// free-text Description with one field per line:
//
//	Maestro: Ana
//	Características: ...
//	Tutor: ...
//	Tel: ...
//
// Resolved returns a copy with the structured fields filled in from those
// legacy fields where the structured ones are empty. Read-time fallback only;
// the parsed values are never written back.
func (e Event) Resolved() Event {
	if e.ChildName == "" && e.Class == "" && e.Title != "" {
		if nino, clase, ok := strings.Cut(e.Title, " - "); ok {
			e.ChildName = strings.TrimSpace(nino)
			e.Class = strings.TrimSpace(clase)
		} else {
			e.ChildName = strings.TrimSpace(e.Title)
		}
	}
	if e.Description == "" {
		return e
	}
	for _, line := range strings.Split(e.Description, "\n") {
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		val = strings.TrimSpace(val)
		if val == "" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "maestro":
			if e.Teacher == "" {
				e.Teacher = val
			}
		case "características", "caracteristicas":
			if e.Characteristics == "" {
				e.Characteristics = val
			}
		case "tutor":
			if e.GuardianName == "" {
				e.GuardianName = val
			}
		case "tel":
			if e.GuardianPhone == "" {
				e.GuardianPhone = val
			}
		}
	}
	return e
}
