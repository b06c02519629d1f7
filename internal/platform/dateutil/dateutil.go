package dateutil

import (
	"errors"
	"strings"
	"time"
)

var ErrBadDate = errors.New("invalid date")

// DayBounds devuelve [00:00:00.000, 23:59:59.999999999] del día de t,
// en la zona horaria de t. El match por día calendario es un range
// check inclusivo sobre estos límites.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// SameDay compara dos timestamps solo por su fecha calendario local.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseDayParam resuelve el path param :date de los endpoints por fecha.
// Acepta el token especial "today", YYYY-MM-DD o RFC3339.
func ParseDayParam(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "today") {
		return time.Now(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrBadDate
}
