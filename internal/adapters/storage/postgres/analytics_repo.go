package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"vet-clinic-api/internal/domain/analytics"
)

type AnalyticsRepo struct {
	db *sql.DB
}

func NewAnalyticsRepo(db *sql.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// Los mapas y series van en columnas jsonb.
func (r *AnalyticsRepo) Create(ctx context.Context, a analytics.Analytic) (analytics.Analytic, error) {
	counts, checkIns, checkInsPrev, err := marshalAnalytic(a)
	if err != nil {
		return analytics.Analytic{}, err
	}

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO analytics (date, appointment_type_counts, check_ins_current, check_ins_previous, revenue, avg_wait_time)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		a.Date,
		counts,
		checkIns,
		checkInsPrev,
		a.Revenue,
		a.AvgWaitTime,
	).Scan(&a.ID)
	if err != nil {
		return analytics.Analytic{}, err
	}
	return a, nil
}

func (r *AnalyticsRepo) GetByID(ctx context.Context, id int64) (analytics.Analytic, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, date, appointment_type_counts, check_ins_current, check_ins_previous, revenue, avg_wait_time
		FROM analytics
		WHERE id = $1
	`, id)

	a, err := scanAnalytic(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return analytics.Analytic{}, analytics.ErrNotFound
		}
		return analytics.Analytic{}, err
	}
	return a, nil
}

func (r *AnalyticsRepo) List(ctx context.Context) ([]analytics.Analytic, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, appointment_type_counts, check_ins_current, check_ins_previous, revenue, avg_wait_time
		FROM analytics
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]analytics.Analytic, 0)
	for rows.Next() {
		a, err := scanAnalytic(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *AnalyticsRepo) Update(ctx context.Context, a analytics.Analytic) (analytics.Analytic, error) {
	counts, checkIns, checkInsPrev, err := marshalAnalytic(a)
	if err != nil {
		return analytics.Analytic{}, err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE analytics
		SET date = $2, appointment_type_counts = $3, check_ins_current = $4,
		    check_ins_previous = $5, revenue = $6, avg_wait_time = $7
		WHERE id = $1
	`,
		a.ID,
		a.Date,
		counts,
		checkIns,
		checkInsPrev,
		a.Revenue,
		a.AvgWaitTime,
	)
	if err != nil {
		return analytics.Analytic{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return analytics.Analytic{}, analytics.ErrNotFound
	}
	return a, nil
}

func (r *AnalyticsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM analytics WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// GetByDateRange devuelve el registro de menor id dentro del rango.
func (r *AnalyticsRepo) GetByDateRange(ctx context.Context, from, to time.Time) (analytics.Analytic, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, date, appointment_type_counts, check_ins_current, check_ins_previous, revenue, avg_wait_time
		FROM analytics
		WHERE date >= $1 AND date <= $2
		ORDER BY id ASC
		LIMIT 1
	`, from, to)

	a, err := scanAnalytic(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return analytics.Analytic{}, analytics.ErrNotFound
		}
		return analytics.Analytic{}, err
	}
	return a, nil
}

func marshalAnalytic(a analytics.Analytic) (counts, checkIns, checkInsPrev []byte, err error) {
	if a.AppointmentTypeCounts == nil {
		a.AppointmentTypeCounts = map[string]int{}
	}
	if a.CheckInsCurrent == nil {
		a.CheckInsCurrent = []int{}
	}
	if a.CheckInsPrevious == nil {
		a.CheckInsPrevious = []int{}
	}

	if counts, err = json.Marshal(a.AppointmentTypeCounts); err != nil {
		return nil, nil, nil, err
	}
	if checkIns, err = json.Marshal(a.CheckInsCurrent); err != nil {
		return nil, nil, nil, err
	}
	if checkInsPrev, err = json.Marshal(a.CheckInsPrevious); err != nil {
		return nil, nil, nil, err
	}
	return counts, checkIns, checkInsPrev, nil
}

func scanAnalytic(row rowScanner) (analytics.Analytic, error) {
	var (
		a            analytics.Analytic
		counts       []byte
		checkIns     []byte
		checkInsPrev []byte
	)
	if err := row.Scan(
		&a.ID,
		&a.Date,
		&counts,
		&checkIns,
		&checkInsPrev,
		&a.Revenue,
		&a.AvgWaitTime,
	); err != nil {
		return analytics.Analytic{}, err
	}

	if err := json.Unmarshal(counts, &a.AppointmentTypeCounts); err != nil {
		return analytics.Analytic{}, err
	}
	if err := json.Unmarshal(checkIns, &a.CheckInsCurrent); err != nil {
		return analytics.Analytic{}, err
	}
	if err := json.Unmarshal(checkInsPrev, &a.CheckInsPrevious); err != nil {
		return analytics.Analytic{}, err
	}
	return a, nil
}
