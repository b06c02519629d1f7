package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vet-clinic-api/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, date, type, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		a.PatientID,
		a.DoctorID,
		a.Date,
		string(a.Type),
		string(a.Status),
		a.Notes,
	).Scan(&a.ID)
	if err != nil {
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, patient_id, doctor_id, date, type, status, notes
		FROM appointments
		WHERE id = $1
	`, id)

	a, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	return r.query(ctx, `
		SELECT id, patient_id, doctor_id, date, type, status, notes
		FROM appointments
		ORDER BY id ASC
	`)
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET patient_id = $2, doctor_id = $3, date = $4, type = $5, status = $6, notes = $7
		WHERE id = $1
	`,
		a.ID,
		a.PatientID,
		a.DoctorID,
		a.Date,
		string(a.Type),
		string(a.Status),
		a.Notes,
	)
	if err != nil {
		return appointments.Appointment{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *AppointmentsRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]appointments.Appointment, error) {
	return r.query(ctx, `
		SELECT id, patient_id, doctor_id, date, type, status, notes
		FROM appointments
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`, from, to)
}

func (r *AppointmentsRepo) ListByPatient(ctx context.Context, patientID int64) ([]appointments.Appointment, error) {
	return r.query(ctx, `
		SELECT id, patient_id, doctor_id, date, type, status, notes
		FROM appointments
		WHERE patient_id = $1
		ORDER BY date ASC
	`, patientID)
}

func (r *AppointmentsRepo) ListByDoctor(ctx context.Context, doctorID int64) ([]appointments.Appointment, error) {
	return r.query(ctx, `
		SELECT id, patient_id, doctor_id, date, type, status, notes
		FROM appointments
		WHERE doctor_id = $1
		ORDER BY date ASC
	`, doctorID)
}

func (r *AppointmentsRepo) query(ctx context.Context, q string, args ...any) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (appointments.Appointment, error) {
	var (
		a      appointments.Appointment
		typ    string
		status string
	)
	if err := row.Scan(
		&a.ID,
		&a.PatientID,
		&a.DoctorID,
		&a.Date,
		&typ,
		&status,
		&a.Notes,
	); err != nil {
		return appointments.Appointment{}, err
	}
	a.Type = appointments.Type(typ)
	a.Status = appointments.Status(status)
	return a, nil
}
