package staff

import "context"

type Repository interface {
	Create(ctx context.Context, m Member) (Member, error)
	GetByID(ctx context.Context, id int64) (Member, error)
	List(ctx context.Context) ([]Member, error)
	Update(ctx context.Context, m Member) (Member, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
