package analytics

import "time"

// Analytic agrega las métricas de un día: conteo de citas por tipo,
// series de check-ins (período actual vs anterior), revenue y espera
// promedio. Por convención hay a lo más un registro por fecha; no se
// enforcea.
type Analytic struct {
	ID int64

	Date time.Time

	AppointmentTypeCounts map[string]int
	CheckInsCurrent       []int
	CheckInsPrevious      []int

	Revenue     float64
	AvgWaitTime float64
}
