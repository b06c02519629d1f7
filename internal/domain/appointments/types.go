package appointments

// Type define los tipos de cita soportados.
type Type string

const (
	TypeCheckup     Type = "checkup"
	TypeVaccination Type = "vaccination"
	TypeSurgery     Type = "surgery"
	TypeDental      Type = "dental"
	TypeFollowUp    Type = "follow_up"
	TypeEmergency   Type = "emergency"
)

func ValidType(t Type) bool {
	switch t {
	case TypeCheckup, TypeVaccination, TypeSurgery, TypeDental, TypeFollowUp, TypeEmergency:
		return true
	}
	return false
}

// Status define el ciclo de vida de una cita en el flowboard.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCanceled   Status = "canceled"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}
