package appointment

import (
	"strings"
	"time"
)

// Layouts com fuso explícito ou ISO completo sem fuso (tratado como UTC).
var absoluteLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// Layouts interpretados no fuso da barbearia.
var localLayouts = []string{
	"2006-01-02T15:04", // <input type="datetime-local">
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
	time.RFC1123Z,
	time.RFC1123,
}

// NormalizeDateTime converte a data vinda do front para UTC.
// ok=false quando nenhum formato conhecido casa.
func NormalizeDateTime(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}
