package analytics

import (
	"context"
	"errors"
	"time"

	"vet-clinic-api/internal/platform/dateutil"
)

var (
	ErrNotFound     = errors.New("analytic not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Date                  time.Time
	AppointmentTypeCounts map[string]int
	CheckInsCurrent       []int
	CheckInsPrevious      []int
	Revenue               float64
	AvgWaitTime           float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Analytic, error) {
	if in.Date.IsZero() {
		return Analytic{}, ErrInvalidInput
	}
	if in.Revenue < 0 || in.AvgWaitTime < 0 {
		return Analytic{}, ErrInvalidInput
	}

	counts := in.AppointmentTypeCounts
	if counts == nil {
		counts = map[string]int{}
	}

	a := Analytic{
		Date:                  in.Date,
		AppointmentTypeCounts: counts,
		CheckInsCurrent:       in.CheckInsCurrent,
		CheckInsPrevious:      in.CheckInsPrevious,
		Revenue:               in.Revenue,
		AvgWaitTime:           in.AvgWaitTime,
	}

	return s.repo.Create(ctx, a)
}

type UpdateInput struct {
	Date                  *time.Time
	AppointmentTypeCounts map[string]int // nil = no tocar
	CheckInsCurrent       []int          // nil = no tocar
	CheckInsPrevious      []int
	Revenue               *float64
	AvgWaitTime           *float64
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Analytic, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Analytic{}, err
	}

	if in.Date != nil {
		if in.Date.IsZero() {
			return Analytic{}, ErrInvalidInput
		}
		current.Date = *in.Date
	}
	if in.AppointmentTypeCounts != nil {
		current.AppointmentTypeCounts = in.AppointmentTypeCounts
	}
	if in.CheckInsCurrent != nil {
		current.CheckInsCurrent = in.CheckInsCurrent
	}
	if in.CheckInsPrevious != nil {
		current.CheckInsPrevious = in.CheckInsPrevious
	}
	if in.Revenue != nil {
		if *in.Revenue < 0 {
			return Analytic{}, ErrInvalidInput
		}
		current.Revenue = *in.Revenue
	}
	if in.AvgWaitTime != nil {
		if *in.AvgWaitTime < 0 {
			return Analytic{}, ErrInvalidInput
		}
		current.AvgWaitTime = *in.AvgWaitTime
	}

	return s.repo.Update(ctx, current)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Analytic, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Analytic, error) {
	return s.repo.List(ctx)
}

// GetByDay matchea por día calendario, no por timestamp exacto.
func (s *Service) GetByDay(ctx context.Context, t time.Time) (Analytic, error) {
	from, to := dateutil.DayBounds(t)
	return s.repo.GetByDateRange(ctx, from, to)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
