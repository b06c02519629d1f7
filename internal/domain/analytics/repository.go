package analytics

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a Analytic) (Analytic, error)
	GetByID(ctx context.Context, id int64) (Analytic, error)
	List(ctx context.Context) ([]Analytic, error)
	Update(ctx context.Context, a Analytic) (Analytic, error)
	Delete(ctx context.Context, id int64) (bool, error)

	// Primer registro cuya fecha caiga en [from, to]; ErrNotFound si no hay.
	GetByDateRange(ctx context.Context, from, to time.Time) (Analytic, error)
}
