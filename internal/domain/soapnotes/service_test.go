package soapnotes_test

import (
	"context"
	"testing"

	mem "vet-clinic-api/internal/adapters/storage/memory"
	"vet-clinic-api/internal/domain/soapnotes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Create_RequiresAtLeastOneSection(t *testing.T) {
	ctx := context.Background()
	svc := soapnotes.NewService(mem.NewSoapNoteRepo())

	_, err := svc.Create(ctx, soapnotes.CreateInput{
		PatientID: 1,
		DoctorID:  1,
	})
	assert.ErrorIs(t, err, soapnotes.ErrInvalidInput)

	// Secciones de puro whitespace tampoco cuentan
	_, err = svc.Create(ctx, soapnotes.CreateInput{
		PatientID:  1,
		DoctorID:   1,
		Subjective: "   ",
		Plan:       "\t",
	})
	assert.ErrorIs(t, err, soapnotes.ErrInvalidInput)

	n, err := svc.Create(ctx, soapnotes.CreateInput{
		PatientID:  1,
		DoctorID:   1,
		Assessment: "otitis externa",
	})
	require.NoError(t, err)
	assert.Equal(t, "otitis externa", n.Assessment)
	assert.False(t, n.CreatedAt.IsZero())
	assert.Equal(t, n.CreatedAt, n.UpdatedAt)
}

func TestService_ListByPatient_NewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := soapnotes.NewService(mem.NewSoapNoteRepo())

	for _, plan := range []string{"primera", "segunda", "tercera"} {
		_, err := svc.Create(ctx, soapnotes.CreateInput{
			PatientID: 1,
			DoctorID:  1,
			Plan:      plan,
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, soapnotes.CreateInput{
		PatientID: 2,
		DoctorID:  1,
		Plan:      "de otro paciente",
	})
	require.NoError(t, err)

	notes, err := svc.ListByPatient(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	for i := 1; i < len(notes); i++ {
		assert.False(t, notes[i-1].CreatedAt.Before(notes[i].CreatedAt))
	}
}
