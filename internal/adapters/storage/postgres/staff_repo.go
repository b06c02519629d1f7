package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vet-clinic-api/internal/domain/staff"
)

type StaffRepo struct {
	db *sql.DB
}

func NewStaffRepo(db *sql.DB) *StaffRepo {
	return &StaffRepo{db: db}
}

func (r *StaffRepo) Create(ctx context.Context, m staff.Member) (staff.Member, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO staff (name, role, specialty, image_url, is_active)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		m.Name,
		m.Role,
		m.Specialty,
		m.ImageURL,
		m.IsActive,
	).Scan(&m.ID)
	if err != nil {
		return staff.Member{}, err
	}
	return m, nil
}

func (r *StaffRepo) GetByID(ctx context.Context, id int64) (staff.Member, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, role, specialty, image_url, is_active
		FROM staff
		WHERE id = $1
	`, id)

	var m staff.Member
	if err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Role,
		&m.Specialty,
		&m.ImageURL,
		&m.IsActive,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return staff.Member{}, staff.ErrNotFound
		}
		return staff.Member{}, err
	}

	return m, nil
}

func (r *StaffRepo) List(ctx context.Context) ([]staff.Member, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, role, specialty, image_url, is_active
		FROM staff
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staff.Member, 0)
	for rows.Next() {
		var m staff.Member
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Role,
			&m.Specialty,
			&m.ImageURL,
			&m.IsActive,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

func (r *StaffRepo) Update(ctx context.Context, m staff.Member) (staff.Member, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE staff
		SET name = $2, role = $3, specialty = $4, image_url = $5, is_active = $6
		WHERE id = $1
	`,
		m.ID,
		m.Name,
		m.Role,
		m.Specialty,
		m.ImageURL,
		m.IsActive,
	)
	if err != nil {
		return staff.Member{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return staff.Member{}, staff.ErrNotFound
	}
	return m, nil
}

func (r *StaffRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
