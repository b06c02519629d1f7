package inventory

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name         string
	Category     string
	SKU          string
	Price        float64
	Quantity     int
	ReorderLevel int
	Description  string
	ImageURL     string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Product{}, ErrInvalidInput
	}
	if in.Price < 0 || in.Quantity < 0 || in.ReorderLevel < 0 {
		return Product{}, ErrInvalidInput
	}

	p := Product{
		Name:         strings.TrimSpace(in.Name),
		Category:     strings.TrimSpace(in.Category),
		SKU:          strings.TrimSpace(in.SKU),
		Price:        in.Price,
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		Description:  strings.TrimSpace(in.Description),
		ImageURL:     strings.TrimSpace(in.ImageURL),
	}

	return s.repo.Create(ctx, p)
}

type UpdateInput struct {
	Name         *string
	Category     *string
	SKU          *string
	Price        *float64
	Quantity     *int
	ReorderLevel *int
	Description  *string
	ImageURL     *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Product, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Product{}, ErrInvalidInput
		}
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		current.Category = strings.TrimSpace(*in.Category)
	}
	if in.SKU != nil {
		current.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return Product{}, ErrInvalidInput
		}
		current.Price = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return Product{}, ErrInvalidInput
		}
		current.Quantity = *in.Quantity
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return Product{}, ErrInvalidInput
		}
		current.ReorderLevel = *in.ReorderLevel
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}
	if in.ImageURL != nil {
		current.ImageURL = strings.TrimSpace(*in.ImageURL)
	}

	return s.repo.Update(ctx, current)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListLowStock(ctx context.Context) ([]Product, error) {
	return s.repo.ListLowStock(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
