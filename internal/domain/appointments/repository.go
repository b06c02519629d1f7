package appointments

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a Appointment) (Appointment, error)
	GetByID(ctx context.Context, id int64) (Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
	Update(ctx context.Context, a Appointment) (Appointment, error)
	Delete(ctx context.Context, id int64) (bool, error)

	// Range check inclusivo sobre [from, to]
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Appointment, error)
	ListByPatient(ctx context.Context, patientID int64) ([]Appointment, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]Appointment, error)
}
