package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vet-clinic-api/internal/domain/schedules"
)

type SchedulesRepo struct {
	db *sql.DB
}

func NewSchedulesRepo(db *sql.DB) *SchedulesRepo {
	return &SchedulesRepo{db: db}
}

func (r *SchedulesRepo) Create(ctx context.Context, sch schedules.Schedule) (schedules.Schedule, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO schedules (staff_id, date, start_time, end_time, type, description)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		sch.StaffID,
		sch.Date,
		sch.StartTime,
		sch.EndTime,
		string(sch.Type),
		sch.Description,
	).Scan(&sch.ID)
	if err != nil {
		return schedules.Schedule{}, err
	}
	return sch, nil
}

func (r *SchedulesRepo) GetByID(ctx context.Context, id int64) (schedules.Schedule, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, staff_id, date, start_time, end_time, type, description
		FROM schedules
		WHERE id = $1
	`, id)

	sch, err := scanSchedule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return schedules.Schedule{}, schedules.ErrNotFound
		}
		return schedules.Schedule{}, err
	}
	return sch, nil
}

func (r *SchedulesRepo) List(ctx context.Context) ([]schedules.Schedule, error) {
	return r.query(ctx, `
		SELECT id, staff_id, date, start_time, end_time, type, description
		FROM schedules
		ORDER BY id ASC
	`)
}

func (r *SchedulesRepo) Update(ctx context.Context, sch schedules.Schedule) (schedules.Schedule, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE schedules
		SET staff_id = $2, date = $3, start_time = $4, end_time = $5, type = $6, description = $7
		WHERE id = $1
	`,
		sch.ID,
		sch.StaffID,
		sch.Date,
		sch.StartTime,
		sch.EndTime,
		string(sch.Type),
		sch.Description,
	)
	if err != nil {
		return schedules.Schedule{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return schedules.Schedule{}, schedules.ErrNotFound
	}
	return sch, nil
}

func (r *SchedulesRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *SchedulesRepo) ListByStaff(ctx context.Context, staffID int64) ([]schedules.Schedule, error) {
	return r.query(ctx, `
		SELECT id, staff_id, date, start_time, end_time, type, description
		FROM schedules
		WHERE staff_id = $1
		ORDER BY date ASC
	`, staffID)
}

func (r *SchedulesRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]schedules.Schedule, error) {
	return r.query(ctx, `
		SELECT id, staff_id, date, start_time, end_time, type, description
		FROM schedules
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC, start_time ASC
	`, from, to)
}

func (r *SchedulesRepo) query(ctx context.Context, q string, args ...any) ([]schedules.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]schedules.Schedule, 0)
	for rows.Next() {
		sch, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sch)
	}

	return out, rows.Err()
}

func scanSchedule(row rowScanner) (schedules.Schedule, error) {
	var (
		sch schedules.Schedule
		typ string
	)
	if err := row.Scan(
		&sch.ID,
		&sch.StaffID,
		&sch.Date,
		&sch.StartTime,
		&sch.EndTime,
		&typ,
		&sch.Description,
	); err != nil {
		return schedules.Schedule{}, err
	}
	sch.Type = schedules.ActivityType(typ)
	return sch, nil
}
