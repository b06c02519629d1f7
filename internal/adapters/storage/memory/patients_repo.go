package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic-api/internal/domain/patients"
)

type patientRepo struct {
	mu     sync.RWMutex
	byID   map[int64]patients.Patient
	nextID int64
}

func NewPatientRepo() patients.Repository {
	return &patientRepo{
		byID: make(map[int64]patients.Patient),
	}
}

// Create asigna el siguiente id del contador monotónico del tipo.
// Los ids nunca se reusan, ni después de un delete.
func (r *patientRepo) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *patientRepo) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return patients.Patient{}, patients.ErrNotFound
	}
	return p, nil
}

func (r *patientRepo) List(ctx context.Context) ([]patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]patients.Patient, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	// Orden estable por id asc (== orden de inserción)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *patientRepo) Update(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return patients.Patient{}, patients.ErrNotFound
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *patientRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}
