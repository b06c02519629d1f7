package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic-api/internal/domain/staff"
)

type staffRepo struct {
	mu     sync.RWMutex
	byID   map[int64]staff.Member
	nextID int64
}

func NewStaffRepo() staff.Repository {
	return &staffRepo{
		byID: make(map[int64]staff.Member),
	}
}

func (r *staffRepo) Create(ctx context.Context, m staff.Member) (staff.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m.ID = r.nextID
	r.byID[m.ID] = m
	return m, nil
}

func (r *staffRepo) GetByID(ctx context.Context, id int64) (staff.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return staff.Member{}, staff.ErrNotFound
	}
	return m, nil
}

func (r *staffRepo) List(ctx context.Context) ([]staff.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]staff.Member, 0, len(r.byID))
	for _, m := range r.byID {
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *staffRepo) Update(ctx context.Context, m staff.Member) (staff.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; !exists {
		return staff.Member{}, staff.ErrNotFound
	}
	r.byID[m.ID] = m
	return m, nil
}

func (r *staffRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}
