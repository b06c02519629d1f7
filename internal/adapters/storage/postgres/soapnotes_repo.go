package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vet-clinic-api/internal/domain/soapnotes"
)

type SoapNotesRepo struct {
	db *sql.DB
}

func NewSoapNotesRepo(db *sql.DB) *SoapNotesRepo {
	return &SoapNotesRepo{db: db}
}

func (r *SoapNotesRepo) Create(ctx context.Context, n soapnotes.Note) (soapnotes.Note, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO soap_notes (
			patient_id, appointment_id, doctor_id,
			subjective, objective, assessment, plan,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		n.PatientID,
		n.AppointmentID,
		n.DoctorID,
		n.Subjective,
		n.Objective,
		n.Assessment,
		n.Plan,
		n.CreatedAt,
		n.UpdatedAt,
	).Scan(&n.ID)
	if err != nil {
		return soapnotes.Note{}, err
	}
	return n, nil
}

func (r *SoapNotesRepo) GetByID(ctx context.Context, id int64) (soapnotes.Note, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, patient_id, appointment_id, doctor_id,
		       subjective, objective, assessment, plan,
		       created_at, updated_at
		FROM soap_notes
		WHERE id = $1
	`, id)

	n, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return soapnotes.Note{}, soapnotes.ErrNotFound
		}
		return soapnotes.Note{}, err
	}
	return n, nil
}

func (r *SoapNotesRepo) List(ctx context.Context) ([]soapnotes.Note, error) {
	return r.query(ctx, `
		SELECT id, patient_id, appointment_id, doctor_id,
		       subjective, objective, assessment, plan,
		       created_at, updated_at
		FROM soap_notes
		ORDER BY id ASC
	`)
}

func (r *SoapNotesRepo) Update(ctx context.Context, n soapnotes.Note) (soapnotes.Note, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE soap_notes
		SET patient_id = $2, appointment_id = $3, doctor_id = $4,
		    subjective = $5, objective = $6, assessment = $7, plan = $8,
		    updated_at = $9
		WHERE id = $1
	`,
		n.ID,
		n.PatientID,
		n.AppointmentID,
		n.DoctorID,
		n.Subjective,
		n.Objective,
		n.Assessment,
		n.Plan,
		n.UpdatedAt,
	)
	if err != nil {
		return soapnotes.Note{}, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return soapnotes.Note{}, soapnotes.ErrNotFound
	}
	return n, nil
}

func (r *SoapNotesRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM soap_notes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func (r *SoapNotesRepo) ListByPatient(ctx context.Context, patientID int64) ([]soapnotes.Note, error) {
	return r.query(ctx, `
		SELECT id, patient_id, appointment_id, doctor_id,
		       subjective, objective, assessment, plan,
		       created_at, updated_at
		FROM soap_notes
		WHERE patient_id = $1
		ORDER BY created_at DESC
	`, patientID)
}

func (r *SoapNotesRepo) query(ctx context.Context, q string, args ...any) ([]soapnotes.Note, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]soapnotes.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, rows.Err()
}

func scanNote(row rowScanner) (soapnotes.Note, error) {
	var n soapnotes.Note
	if err := row.Scan(
		&n.ID,
		&n.PatientID,
		&n.AppointmentID,
		&n.DoctorID,
		&n.Subjective,
		&n.Objective,
		&n.Assessment,
		&n.Plan,
		&n.CreatedAt,
		&n.UpdatedAt,
	); err != nil {
		return soapnotes.Note{}, err
	}
	return n, nil
}
