package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vet-clinic-api/internal/domain/patients"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

// id es BIGSERIAL: el contador monotónico por tipo vive en la secuencia.
func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO patients (
			name, species, breed, age, gender,
			owner_name, owner_phone, image_url, notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		p.Name,
		p.Species,
		p.Breed,
		p.Age,
		p.Gender,
		p.OwnerName,
		p.OwnerPhone,
		p.ImageURL,
		p.Notes,
	).Scan(&p.ID)
	if err != nil {
		return patients.Patient{}, err
	}
	return p, nil
}

func (r *PatientsRepo) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, species, breed, age, gender,
		       owner_name, owner_phone, image_url, notes
		FROM patients
		WHERE id = $1
	`, id)

	var p patients.Patient
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Age,
		&p.Gender,
		&p.OwnerName,
		&p.OwnerPhone,
		&p.ImageURL,
		&p.Notes,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return patients.Patient{}, patients.ErrNotFound
		}
		return patients.Patient{}, err
	}

	return p, nil
}

func (r *PatientsRepo) List(ctx context.Context) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, species, breed, age, gender,
		       owner_name, owner_phone, image_url, notes
		FROM patients
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		var p patients.Patient
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Species,
			&p.Breed,
			&p.Age,
			&p.Gender,
			&p.OwnerName,
			&p.OwnerPhone,
			&p.ImageURL,
			&p.Notes,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PatientsRepo) Update(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE patients
		SET name = $2, species = $3, breed = $4, age = $5, gender = $6,
		    owner_name = $7, owner_phone = $8, image_url = $9, notes = $10
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Species,
		p.Breed,
		p.Age,
		p.Gender,
		p.OwnerName,
		p.OwnerPhone,
		p.ImageURL,
		p.Notes,
	)
	if err != nil {
		return patients.Patient{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return patients.Patient{}, patients.ErrNotFound
	}
	return p, nil
}

func (r *PatientsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
