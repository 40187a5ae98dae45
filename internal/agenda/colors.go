package agenda

// Class tags are an open string, not an enum: historical data drifted across
// stricter and looser versions of the set, so nothing validates against this
// table. It only drives highlighting, and it is the single definition shared
// by the calendar pages and the sheet export.
var classColors = map[string]string{
	"CEMS":        "#C4C7F2",
	"AI":          "#05F2DB",
	"OCUPACIONAL": "#F2E205",
	"BABY SPA":    "#F4CCCC",
	"CANCELAR":    "#FF0000",
	"MUESTRA":     "#C6E0B4",
	"REPOSICIÓN":  "#FF00FF",
}

const defaultClassColor = "#F24B99"

// ClassColor returns the display color for a class tag, falling back to the
// default for anything outside the recommended set.
func ClassColor(clase string) string {
	if c, ok := classColors[clase]; ok {
		return c
	}
	return defaultClassColor
}
