package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"vet-clinic-api/internal/domain/analytics"
)

type analyticRepo struct {
	mu     sync.RWMutex
	byID   map[int64]analytics.Analytic
	nextID int64
}

func NewAnalyticRepo() analytics.Repository {
	return &analyticRepo{
		byID: make(map[int64]analytics.Analytic),
	}
}

func (r *analyticRepo) Create(ctx context.Context, a analytics.Analytic) (analytics.Analytic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a, nil
}

func (r *analyticRepo) GetByID(ctx context.Context, id int64) (analytics.Analytic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return analytics.Analytic{}, analytics.ErrNotFound
	}
	return a, nil
}

func (r *analyticRepo) List(ctx context.Context) ([]analytics.Analytic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]analytics.Analytic, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *analyticRepo) Update(ctx context.Context, a analytics.Analytic) (analytics.Analytic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return analytics.Analytic{}, analytics.ErrNotFound
	}
	r.byID[a.ID] = a
	return a, nil
}

func (r *analyticRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

// GetByDateRange devuelve el registro de menor id dentro del rango.
// Por convención hay uno solo por día.
func (r *analyticRepo) GetByDateRange(ctx context.Context, from, to time.Time) (analytics.Analytic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		best  analytics.Analytic
		found bool
	)
	for _, a := range r.byID {
		if a.Date.Before(from) || a.Date.After(to) {
			continue
		}
		if !found || a.ID < best.ID {
			best = a
			found = true
		}
	}

	if !found {
		return analytics.Analytic{}, analytics.ErrNotFound
	}
	return best, nil
}
