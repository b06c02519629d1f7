package memory_test

import (
	"context"
	"testing"
	"time"

	mem "vet-clinic-api/internal/adapters/storage/memory"
	"vet-clinic-api/internal/domain/appointments"
	"vet-clinic-api/internal/domain/patients"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientRepo_IDsAreSequentialAndNeverReused(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewPatientRepo()

	p1, err := repo.Create(ctx, patients.Patient{Name: "Max", Species: "Dog"})
	require.NoError(t, err)
	p2, err := repo.Create(ctx, patients.Patient{Name: "Luna", Species: "Cat"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), p1.ID)
	assert.Equal(t, int64(2), p2.ID)

	// Borrar el último no libera su id
	deleted, err := repo.Delete(ctx, p2.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	p3, err := repo.Create(ctx, patients.Patient{Name: "Rocky", Species: "Dog"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), p3.ID)
}

func TestPatientRepo_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewPatientRepo()

	p, err := repo.Create(ctx, patients.Patient{Name: "Max", Species: "Dog"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, patients.ErrNotFound)
}

func TestPatientRepo_ListSortedByID(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewPatientRepo()

	for _, name := range []string{"Max", "Luna", "Rocky"} {
		_, err := repo.Create(ctx, patients.Patient{Name: name, Species: "Dog"})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, p := range list {
		assert.Equal(t, int64(i+1), p.ID)
	}
}

func TestAppointmentRepo_DateRangeBoundsAreInclusive(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewAppointmentRepo()

	day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	end := day.Add(24*time.Hour - time.Nanosecond)

	cases := []struct {
		date time.Time
		in   bool
	}{
		{day, true},                            // medianoche exacta
		{day.Add(12 * time.Hour), true},        // mediodía
		{end, true},                            // último nanosegundo del día
		{day.Add(-time.Nanosecond), false},     // día anterior
		{day.Add(24 * time.Hour), false},       // medianoche del siguiente
	}

	for _, c := range cases {
		_, err := repo.Create(ctx, appointments.Appointment{
			PatientID: 1,
			DoctorID:  1,
			Date:      c.date,
			Type:      appointments.TypeCheckup,
			Status:    appointments.StatusScheduled,
		})
		require.NoError(t, err)
	}

	got, err := repo.ListByDateRange(ctx, day, end)
	require.NoError(t, err)

	want := 0
	for _, c := range cases {
		if c.in {
			want++
		}
	}
	assert.Len(t, got, want)
	for _, a := range got {
		assert.False(t, a.Date.Before(day))
		assert.False(t, a.Date.After(end))
	}
}

func TestAppointmentRepo_UpdateMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewAppointmentRepo()

	_, err := repo.Update(ctx, appointments.Appointment{ID: 99})
	assert.ErrorIs(t, err, appointments.ErrNotFound)
}
