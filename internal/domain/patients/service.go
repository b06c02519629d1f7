package patients

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound     = errors.New("patient not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name       string
	Species    string
	Breed      string
	Age        int
	Gender     string
	OwnerName  string
	OwnerPhone string
	ImageURL   string
	Notes      string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Patient, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Patient{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Patient{}, ErrInvalidInput
	}
	if in.Age < 0 {
		return Patient{}, ErrInvalidInput
	}

	p := Patient{
		Name:       strings.TrimSpace(in.Name),
		Species:    strings.TrimSpace(in.Species),
		Breed:      strings.TrimSpace(in.Breed),
		Age:        in.Age,
		Gender:     strings.TrimSpace(in.Gender),
		OwnerName:  strings.TrimSpace(in.OwnerName),
		OwnerPhone: strings.TrimSpace(in.OwnerPhone),
		ImageURL:   strings.TrimSpace(in.ImageURL),
		Notes:      in.Notes,
	}

	return s.repo.Create(ctx, p)
}

// UpdateInput usa punteros para update parcial: nil = no tocar el campo.
type UpdateInput struct {
	Name       *string
	Species    *string
	Breed      *string
	Age        *int
	Gender     *string
	OwnerName  *string
	OwnerPhone *string
	ImageURL   *string
	Notes      *string
}

// Update hace merge superficial de los campos presentes sobre el
// registro actual; los campos no enviados quedan intactos.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Patient, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Patient{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Patient{}, ErrInvalidInput
		}
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		current.Species = strings.TrimSpace(*in.Species)
	}
	if in.Breed != nil {
		current.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Patient{}, ErrInvalidInput
		}
		current.Age = *in.Age
	}
	if in.Gender != nil {
		current.Gender = strings.TrimSpace(*in.Gender)
	}
	if in.OwnerName != nil {
		current.OwnerName = strings.TrimSpace(*in.OwnerName)
	}
	if in.OwnerPhone != nil {
		current.OwnerPhone = strings.TrimSpace(*in.OwnerPhone)
	}
	if in.ImageURL != nil {
		current.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.Notes != nil {
		current.Notes = *in.Notes
	}

	return s.repo.Update(ctx, current)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
