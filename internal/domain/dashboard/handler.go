package dashboard

import (
	"errors"
	"net/http"
	"time"

	"vet-clinic-api/internal/domain/analytics"
	"vet-clinic-api/internal/domain/appointments"
	"vet-clinic-api/internal/domain/patients"
	"vet-clinic-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

// metricsResponse es el snapshot del dashboard. Se compone de tres
// lecturas independientes al store; no son atómicas como grupo, una
// escritura concurrente entre la primera y la tercera puede mezclar
// estados. Aceptado como métrica aproximada (ver DESIGN.md).
type metricsResponse struct {
	AppointmentsToday int     `json:"appointmentsToday"`
	TotalPatients     int     `json:"totalPatients"`
	AvgWaitTime       float64 `json:"avgWaitTime"`
	WeeklyRevenue     float64 `json:"weeklyRevenue"`
}

func RegisterRoutes(r chi.Router, patientsSvc *patients.Service, apptSvc *appointments.Service, analyticsSvc *analytics.Service) {
	r.Get("/dashboard", metricsHandler(patientsSvc, apptSvc, analyticsSvc))
}

func metricsHandler(patientsSvc *patients.Service, apptSvc *appointments.Service, analyticsSvc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		today := time.Now()

		todayAppts, err := apptSvc.ListByDay(r.Context(), today)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		allPatients, err := patientsSvc.List(r.Context())
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := metricsResponse{
			AppointmentsToday: len(todayAppts),
			TotalPatients:     len(allPatients),
		}

		// Sin analytic de hoy, espera y revenue quedan en 0
		a, err := analyticsSvc.GetByDay(r.Context(), today)
		switch {
		case err == nil:
			resp.AvgWaitTime = a.AvgWaitTime
			resp.WeeklyRevenue = a.Revenue
		case errors.Is(err, analytics.ErrNotFound):
			// ok
		default:
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		httpx.JSON(w, http.StatusOK, resp)
	}
}
