package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"vet-clinic-api/internal/domain/schedules"
)

type scheduleRepo struct {
	mu     sync.RWMutex
	byID   map[int64]schedules.Schedule
	nextID int64
}

func NewScheduleRepo() schedules.Repository {
	return &scheduleRepo{
		byID: make(map[int64]schedules.Schedule),
	}
}

func (r *scheduleRepo) Create(ctx context.Context, sch schedules.Schedule) (schedules.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	sch.ID = r.nextID
	r.byID[sch.ID] = sch
	return sch, nil
}

func (r *scheduleRepo) GetByID(ctx context.Context, id int64) (schedules.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sch, ok := r.byID[id]
	if !ok {
		return schedules.Schedule{}, schedules.ErrNotFound
	}
	return sch, nil
}

func (r *scheduleRepo) List(ctx context.Context) ([]schedules.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedules.Schedule, 0, len(r.byID))
	for _, sch := range r.byID {
		out = append(out, sch)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *scheduleRepo) Update(ctx context.Context, sch schedules.Schedule) (schedules.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[sch.ID]; !exists {
		return schedules.Schedule{}, schedules.ErrNotFound
	}
	r.byID[sch.ID] = sch
	return sch, nil
}

func (r *scheduleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *scheduleRepo) ListByStaff(ctx context.Context, staffID int64) ([]schedules.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedules.Schedule, 0)
	for _, sch := range r.byID {
		if sch.StaffID == staffID {
			out = append(out, sch)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}

func (r *scheduleRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]schedules.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedules.Schedule, 0)
	for _, sch := range r.byID {
		if sch.Date.Before(from) || sch.Date.After(to) {
			continue
		}
		out = append(out, sch)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}
