package schedules

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, sch Schedule) (Schedule, error)
	GetByID(ctx context.Context, id int64) (Schedule, error)
	List(ctx context.Context) ([]Schedule, error)
	Update(ctx context.Context, sch Schedule) (Schedule, error)
	Delete(ctx context.Context, id int64) (bool, error)

	ListByStaff(ctx context.Context, staffID int64) ([]Schedule, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Schedule, error)
}
