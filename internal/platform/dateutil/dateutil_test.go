package dateutil_test

import (
	"testing"
	"time"

	"vet-clinic-api/internal/platform/dateutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBounds(t *testing.T) {
	at := time.Date(2026, 3, 15, 14, 30, 45, 123, time.UTC)
	start, end := dateutil.DayBounds(at)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, 999999999, time.UTC), end)

	// Los límites contienen cualquier instante del día y nada más
	assert.False(t, at.Before(start) || at.After(end))
	assert.True(t, start.Add(-time.Nanosecond).Before(start))
	assert.True(t, end.Add(time.Nanosecond).After(end))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, dateutil.SameDay(a, b))
	assert.False(t, dateutil.SameDay(b, c))
}

func TestParseDayParam(t *testing.T) {
	// token today
	got, err := dateutil.ParseDayParam("today")
	require.NoError(t, err)
	assert.True(t, dateutil.SameDay(got, time.Now()))

	got, err = dateutil.ParseDayParam("TODAY")
	require.NoError(t, err)
	assert.True(t, dateutil.SameDay(got, time.Now()))

	// fecha plana
	got, err = dateutil.ParseDayParam("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), got)

	// RFC3339
	got, err = dateutil.ParseDayParam("2026-03-15T14:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 14, got.Hour())

	// basura
	_, err = dateutil.ParseDayParam("not-a-date")
	assert.ErrorIs(t, err, dateutil.ErrBadDate)

	_, err = dateutil.ParseDayParam("")
	assert.ErrorIs(t, err, dateutil.ErrBadDate)
}
