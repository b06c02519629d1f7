package soapnotes

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound     = errors.New("soap note not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	PatientID     int64
	AppointmentID *int64
	DoctorID      int64
	Subjective    string
	Objective     string
	Assessment    string
	Plan          string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Note, error) {
	if in.PatientID <= 0 || in.DoctorID <= 0 {
		return Note{}, ErrInvalidInput
	}
	if in.AppointmentID != nil && *in.AppointmentID <= 0 {
		return Note{}, ErrInvalidInput
	}
	// Una nota SOAP sin ninguna sección no aporta nada
	if strings.TrimSpace(in.Subjective) == "" &&
		strings.TrimSpace(in.Objective) == "" &&
		strings.TrimSpace(in.Assessment) == "" &&
		strings.TrimSpace(in.Plan) == "" {
		return Note{}, ErrInvalidInput
	}

	now := s.now()
	n := Note{
		PatientID:     in.PatientID,
		AppointmentID: in.AppointmentID,
		DoctorID:      in.DoctorID,
		Subjective:    strings.TrimSpace(in.Subjective),
		Objective:     strings.TrimSpace(in.Objective),
		Assessment:    strings.TrimSpace(in.Assessment),
		Plan:          strings.TrimSpace(in.Plan),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return s.repo.Create(ctx, n)
}

type UpdateInput struct {
	Subjective *string
	Objective  *string
	Assessment *string
	Plan       *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Note, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Note{}, err
	}

	if in.Subjective != nil {
		current.Subjective = strings.TrimSpace(*in.Subjective)
	}
	if in.Objective != nil {
		current.Objective = strings.TrimSpace(*in.Objective)
	}
	if in.Assessment != nil {
		current.Assessment = strings.TrimSpace(*in.Assessment)
	}
	if in.Plan != nil {
		current.Plan = strings.TrimSpace(*in.Plan)
	}
	current.UpdatedAt = s.now()

	return s.repo.Update(ctx, current)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Note, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Note, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]Note, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
