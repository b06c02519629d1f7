package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"vet-clinic-api/internal/domain/appointments"
)

type appointmentRepo struct {
	mu     sync.RWMutex
	byID   map[int64]appointments.Appointment
	nextID int64
}

func NewAppointmentRepo() appointments.Repository {
	return &appointmentRepo{
		byID: make(map[int64]appointments.Appointment),
	}
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a, nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

func (r *appointmentRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *appointmentRepo) Update(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	r.byID[a.ID] = a
	return a, nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

// ListByDateRange es un scan lineal con bounds inclusivos; suficiente
// a esta escala.
func (r *appointmentRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.byID {
		if a.Date.Before(from) || a.Date.After(to) {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}

func (r *appointmentRepo) ListByPatient(ctx context.Context, patientID int64) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.byID {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}

func (r *appointmentRepo) ListByDoctor(ctx context.Context, doctorID int64) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.byID {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}
