package appointments

import "time"

// Appointment referencia paciente y doctor solo por id numérico;
// no hay integridad referencial (ver DESIGN.md).
type Appointment struct {
	ID int64

	PatientID int64
	DoctorID  int64

	Date   time.Time
	Type   Type
	Status Status

	Notes string
}
