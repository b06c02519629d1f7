package patients_test

import (
	"context"
	"testing"

	mem "vet-clinic-api/internal/adapters/storage/memory"
	"vet-clinic-api/internal/domain/patients"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestService_Create_ValidatesInput(t *testing.T) {
	ctx := context.Background()
	svc := patients.NewService(mem.NewPatientRepo())

	_, err := svc.Create(ctx, patients.CreateInput{Species: "Dog"})
	assert.ErrorIs(t, err, patients.ErrInvalidInput)

	_, err = svc.Create(ctx, patients.CreateInput{Name: "Max"})
	assert.ErrorIs(t, err, patients.ErrInvalidInput)

	_, err = svc.Create(ctx, patients.CreateInput{Name: "Max", Species: "Dog", Age: -1})
	assert.ErrorIs(t, err, patients.ErrInvalidInput)

	p, err := svc.Create(ctx, patients.CreateInput{Name: "  Max  ", Species: "Dog"})
	require.NoError(t, err)
	assert.Equal(t, "Max", p.Name)
	assert.Equal(t, int64(1), p.ID)
}

func TestService_Update_MergesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	svc := patients.NewService(mem.NewPatientRepo())

	p, err := svc.Create(ctx, patients.CreateInput{
		Name:       "Max",
		Species:    "Dog",
		Breed:      "Golden Retriever",
		Age:        5,
		OwnerName:  "Laura Pérez",
		OwnerPhone: "555-0101",
	})
	require.NoError(t, err)

	// Solo age cambia, el resto se preserva
	got, err := svc.Update(ctx, p.ID, patients.UpdateInput{Age: intPtr(6)})
	require.NoError(t, err)

	assert.Equal(t, 6, got.Age)
	assert.Equal(t, "Max", got.Name)
	assert.Equal(t, "Golden Retriever", got.Breed)
	assert.Equal(t, "Laura Pérez", got.OwnerName)
	assert.Equal(t, "555-0101", got.OwnerPhone)
}

func TestService_Update_RejectsBadValues(t *testing.T) {
	ctx := context.Background()
	svc := patients.NewService(mem.NewPatientRepo())

	p, err := svc.Create(ctx, patients.CreateInput{Name: "Max", Species: "Dog", Age: 5})
	require.NoError(t, err)

	_, err = svc.Update(ctx, p.ID, patients.UpdateInput{Name: strPtr("   ")})
	assert.ErrorIs(t, err, patients.ErrInvalidInput)

	_, err = svc.Update(ctx, p.ID, patients.UpdateInput{Age: intPtr(-2)})
	assert.ErrorIs(t, err, patients.ErrInvalidInput)

	// El registro no cambió
	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Max", got.Name)
	assert.Equal(t, 5, got.Age)
}

func TestService_Update_MissingPatient(t *testing.T) {
	ctx := context.Background()
	svc := patients.NewService(mem.NewPatientRepo())

	_, err := svc.Update(ctx, 42, patients.UpdateInput{Name: strPtr("Max")})
	assert.ErrorIs(t, err, patients.ErrNotFound)
}
