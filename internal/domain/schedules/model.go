package schedules

import "time"

// ActivityType define los bloques de agenda del personal.
type ActivityType string

const (
	ActivityAppointments ActivityType = "appointments"
	ActivityMeeting      ActivityType = "meeting"
	ActivitySurgery      ActivityType = "surgery"
	ActivityBreak        ActivityType = "break"
	ActivityAdmin        ActivityType = "admin"
)

func ValidActivityType(t ActivityType) bool {
	switch t {
	case ActivityAppointments, ActivityMeeting, ActivitySurgery, ActivityBreak, ActivityAdmin:
		return true
	}
	return false
}

// Schedule es un bloque de agenda de un staff para un día.
// StartTime/EndTime van como "HH:MM" (24h).
type Schedule struct {
	ID int64

	StaffID int64
	Date    time.Time

	StartTime string
	EndTime   string

	Type        ActivityType
	Description string
}
