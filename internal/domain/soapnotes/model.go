package soapnotes

import "time"

// Note es una nota médica SOAP (Subjective, Objective, Assessment,
// Plan) asociada a un paciente y opcionalmente a una cita concreta.
type Note struct {
	ID int64

	PatientID     int64
	AppointmentID *int64
	DoctorID      int64

	Subjective string
	Objective  string
	Assessment string
	Plan       string

	CreatedAt time.Time
	UpdatedAt time.Time
}
