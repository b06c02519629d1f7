package schedules_test

import (
	"context"
	"testing"
	"time"

	mem "vet-clinic-api/internal/adapters/storage/memory"
	"vet-clinic-api/internal/domain/schedules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() schedules.CreateInput {
	return schedules.CreateInput{
		StaffID:   1,
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "17:00",
		Type:      schedules.ActivityAppointments,
	}
}

func TestService_Create_TimeRange(t *testing.T) {
	ctx := context.Background()
	svc := schedules.NewService(mem.NewScheduleRepo())

	// start > end
	in := validInput()
	in.StartTime = "17:00"
	in.EndTime = "09:00"
	_, err := svc.Create(ctx, in)
	assert.ErrorIs(t, err, schedules.ErrBadTimeRange)

	// start == end es válido
	in = validInput()
	in.StartTime = "09:00"
	in.EndTime = "09:00"
	_, err = svc.Create(ctx, in)
	assert.NoError(t, err)

	// formato inválido
	in = validInput()
	in.StartTime = "9am"
	_, err = svc.Create(ctx, in)
	assert.ErrorIs(t, err, schedules.ErrInvalidInput)
}

func TestService_Create_RejectsUnknownType(t *testing.T) {
	ctx := context.Background()
	svc := schedules.NewService(mem.NewScheduleRepo())

	in := validInput()
	in.Type = schedules.ActivityType("vacation")
	_, err := svc.Create(ctx, in)
	assert.ErrorIs(t, err, schedules.ErrInvalidInput)
}

func TestService_Update_RecheckRangeAfterMerge(t *testing.T) {
	ctx := context.Background()
	svc := schedules.NewService(mem.NewScheduleRepo())

	sch, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	// Solo start_time sube por encima del end existente: inválido
	late := "18:00"
	_, err = svc.Update(ctx, sch.ID, schedules.UpdateInput{StartTime: &late})
	assert.ErrorIs(t, err, schedules.ErrBadTimeRange)

	// El registro quedó intacto
	got, err := svc.GetByID(ctx, sch.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", got.StartTime)

	// Mover ambos extremos sí es válido
	start, end := "10:00", "18:00"
	got, err = svc.Update(ctx, sch.ID, schedules.UpdateInput{StartTime: &start, EndTime: &end})
	require.NoError(t, err)
	assert.Equal(t, "10:00", got.StartTime)
	assert.Equal(t, "18:00", got.EndTime)
}
