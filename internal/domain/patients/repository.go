package patients

import "context"

type Repository interface {
	Create(ctx context.Context, p Patient) (Patient, error)
	GetByID(ctx context.Context, id int64) (Patient, error)
	List(ctx context.Context) ([]Patient, error)
	Update(ctx context.Context, p Patient) (Patient, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
