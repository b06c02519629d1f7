package schedules

import (
	"context"
	"errors"
	"strings"
	"time"

	"vet-clinic-api/internal/platform/dateutil"
)

var (
	ErrNotFound     = errors.New("schedule not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrBadTimeRange = errors.New("start_time must be before or equal to end_time")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	StaffID     int64
	Date        time.Time
	StartTime   string
	EndTime     string
	Type        ActivityType
	Description string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Schedule, error) {
	if in.StaffID <= 0 {
		return Schedule{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Schedule{}, ErrInvalidInput
	}
	if !ValidActivityType(in.Type) {
		return Schedule{}, ErrInvalidInput
	}
	if err := checkTimeRange(in.StartTime, in.EndTime); err != nil {
		return Schedule{}, err
	}

	sch := Schedule{
		StaffID:     in.StaffID,
		Date:        in.Date,
		StartTime:   strings.TrimSpace(in.StartTime),
		EndTime:     strings.TrimSpace(in.EndTime),
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
	}

	return s.repo.Create(ctx, sch)
}

type UpdateInput struct {
	StaffID     *int64
	Date        *time.Time
	StartTime   *string
	EndTime     *string
	Type        *ActivityType
	Description *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Schedule, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Schedule{}, err
	}

	if in.StaffID != nil {
		if *in.StaffID <= 0 {
			return Schedule{}, ErrInvalidInput
		}
		current.StaffID = *in.StaffID
	}
	if in.Date != nil {
		if in.Date.IsZero() {
			return Schedule{}, ErrInvalidInput
		}
		current.Date = *in.Date
	}
	if in.StartTime != nil {
		current.StartTime = strings.TrimSpace(*in.StartTime)
	}
	if in.EndTime != nil {
		current.EndTime = strings.TrimSpace(*in.EndTime)
	}
	if in.Type != nil {
		if !ValidActivityType(*in.Type) {
			return Schedule{}, ErrInvalidInput
		}
		current.Type = *in.Type
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}

	// El invariante se re-chequea sobre el registro ya mergeado
	if err := checkTimeRange(current.StartTime, current.EndTime); err != nil {
		return Schedule{}, err
	}

	return s.repo.Update(ctx, current)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Schedule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Schedule, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByStaff(ctx context.Context, staffID int64) ([]Schedule, error) {
	return s.repo.ListByStaff(ctx, staffID)
}

func (s *Service) ListByDay(ctx context.Context, t time.Time) ([]Schedule, error) {
	from, to := dateutil.DayBounds(t)
	return s.repo.ListByDateRange(ctx, from, to)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// checkTimeRange exige "HH:MM" y start <= end.
func checkTimeRange(start, end string) error {
	st, err := time.Parse("15:04", strings.TrimSpace(start))
	if err != nil {
		return ErrInvalidInput
	}
	et, err := time.Parse("15:04", strings.TrimSpace(end))
	if err != nil {
		return ErrInvalidInput
	}
	if st.After(et) {
		return ErrBadTimeRange
	}
	return nil
}
