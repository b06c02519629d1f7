package staff

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound     = errors.New("staff member not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name      string
	Role      string
	Specialty string
	ImageURL  string
	IsActive  *bool // nil = activo por default
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Member, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Member{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Role) == "" {
		return Member{}, ErrInvalidInput
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	m := Member{
		Name:      strings.TrimSpace(in.Name),
		Role:      strings.TrimSpace(in.Role),
		Specialty: strings.TrimSpace(in.Specialty),
		ImageURL:  strings.TrimSpace(in.ImageURL),
		IsActive:  active,
	}

	return s.repo.Create(ctx, m)
}

type UpdateInput struct {
	Name      *string
	Role      *string
	Specialty *string
	ImageURL  *string
	IsActive  *bool
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Member, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Member{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Member{}, ErrInvalidInput
		}
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Role != nil {
		current.Role = strings.TrimSpace(*in.Role)
	}
	if in.Specialty != nil {
		current.Specialty = strings.TrimSpace(*in.Specialty)
	}
	if in.ImageURL != nil {
		current.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.IsActive != nil {
		current.IsActive = *in.IsActive
	}

	return s.repo.Update(ctx, current)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Member, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
