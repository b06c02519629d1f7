package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic-api/internal/domain/soapnotes"
)

type soapNoteRepo struct {
	mu     sync.RWMutex
	byID   map[int64]soapnotes.Note
	nextID int64
}

func NewSoapNoteRepo() soapnotes.Repository {
	return &soapNoteRepo{
		byID: make(map[int64]soapnotes.Note),
	}
}

func (r *soapNoteRepo) Create(ctx context.Context, n soapnotes.Note) (soapnotes.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	n.ID = r.nextID
	r.byID[n.ID] = n
	return n, nil
}

func (r *soapNoteRepo) GetByID(ctx context.Context, id int64) (soapnotes.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.byID[id]
	if !ok {
		return soapnotes.Note{}, soapnotes.ErrNotFound
	}
	return n, nil
}

func (r *soapNoteRepo) List(ctx context.Context) ([]soapnotes.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]soapnotes.Note, 0, len(r.byID))
	for _, n := range r.byID {
		out = append(out, n)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *soapNoteRepo) Update(ctx context.Context, n soapnotes.Note) (soapnotes.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[n.ID]; !exists {
		return soapnotes.Note{}, soapnotes.ErrNotFound
	}
	r.byID[n.ID] = n
	return n, nil
}

func (r *soapNoteRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *soapNoteRepo) ListByPatient(ctx context.Context, patientID int64) ([]soapnotes.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]soapnotes.Note, 0)
	for _, n := range r.byID {
		if n.PatientID == patientID {
			out = append(out, n)
		}
	}

	// Más reciente primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
