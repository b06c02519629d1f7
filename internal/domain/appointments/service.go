package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"vet-clinic-api/internal/platform/dateutil"
)

var (
	ErrNotFound     = errors.New("appointment not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	PatientID int64
	DoctorID  int64
	Date      time.Time
	Type      Type
	Status    Status
	Notes     string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if in.PatientID <= 0 || in.DoctorID <= 0 {
		return Appointment{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Appointment{}, ErrInvalidInput
	}
	if !ValidType(in.Type) {
		return Appointment{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = StatusScheduled
	}
	if !ValidStatus(status) {
		return Appointment{}, ErrInvalidInput
	}

	a := Appointment{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Date:      in.Date,
		Type:      in.Type,
		Status:    status,
		Notes:     strings.TrimSpace(in.Notes),
	}

	return s.repo.Create(ctx, a)
}

type UpdateInput struct {
	PatientID *int64
	DoctorID  *int64
	Date      *time.Time
	Type      *Type
	Status    *Status
	Notes     *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Appointment, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	if in.PatientID != nil {
		if *in.PatientID <= 0 {
			return Appointment{}, ErrInvalidInput
		}
		current.PatientID = *in.PatientID
	}
	if in.DoctorID != nil {
		if *in.DoctorID <= 0 {
			return Appointment{}, ErrInvalidInput
		}
		current.DoctorID = *in.DoctorID
	}
	if in.Date != nil {
		if in.Date.IsZero() {
			return Appointment{}, ErrInvalidInput
		}
		current.Date = *in.Date
	}
	if in.Type != nil {
		if !ValidType(*in.Type) {
			return Appointment{}, ErrInvalidInput
		}
		current.Type = *in.Type
	}
	if in.Status != nil {
		if !ValidStatus(*in.Status) {
			return Appointment{}, ErrInvalidInput
		}
		current.Status = *in.Status
	}
	if in.Notes != nil {
		current.Notes = strings.TrimSpace(*in.Notes)
	}

	return s.repo.Update(ctx, current)
}

// UpdateStatus valida el enum antes de tocar el store; un status
// inválido no modifica nada.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status Status) (Appointment, error) {
	if !ValidStatus(status) {
		return Appointment{}, ErrInvalidInput
	}
	return s.Update(ctx, id, UpdateInput{Status: &status})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

// ListByDay filtra por día calendario: [00:00, 23:59:59.999...] del día de t.
func (s *Service) ListByDay(ctx context.Context, t time.Time) ([]Appointment, error) {
	from, to := dateutil.DayBounds(t)
	return s.repo.ListByDateRange(ctx, from, to)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int64) ([]Appointment, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
