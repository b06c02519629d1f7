package soapnotes

import "context"

type Repository interface {
	Create(ctx context.Context, n Note) (Note, error)
	GetByID(ctx context.Context, id int64) (Note, error)
	List(ctx context.Context) ([]Note, error)
	Update(ctx context.Context, n Note) (Note, error)
	Delete(ctx context.Context, id int64) (bool, error)

	// Historia clínica del paciente, más reciente primero.
	ListByPatient(ctx context.Context, patientID int64) ([]Note, error)
}
