package analytics

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vet-clinic-api/internal/platform/dateutil"
	"vet-clinic-api/internal/platform/httpx"
	"vet-clinic-api/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/analytics", func(ar chi.Router) {
		ar.Get("/", listHandler(svc))
		ar.Post("/", createHandler(svc))

		// A diferencia del list (200 con array vacío), por fecha es 404
		// si no existe registro para ese día.
		ar.Get("/date/{date}", getByDateHandler(svc))

		ar.Get("/{analyticID}", getHandler(svc))
		ar.Put("/{analyticID}", updateHandler(svc))
		ar.Delete("/{analyticID}", deleteHandler(svc))
	})
}

type createAnalyticRequest struct {
	Date                  time.Time      `json:"date" validate:"required"`
	AppointmentTypeCounts map[string]int `json:"appointment_type_counts"`
	CheckInsCurrent       []int          `json:"check_ins_current"`
	CheckInsPrevious      []int          `json:"check_ins_previous"`
	Revenue               float64        `json:"revenue" validate:"gte=0"`
	AvgWaitTime           float64        `json:"avg_wait_time" validate:"gte=0"`
}

type updateAnalyticRequest struct {
	Date                  *time.Time     `json:"date"`
	AppointmentTypeCounts map[string]int `json:"appointment_type_counts"`
	CheckInsCurrent       []int          `json:"check_ins_current"`
	CheckInsPrevious      []int          `json:"check_ins_previous"`
	Revenue               *float64       `json:"revenue" validate:"omitempty,gte=0"`
	AvgWaitTime           *float64       `json:"avg_wait_time" validate:"omitempty,gte=0"`
}

type analyticResponse struct {
	ID                    int64          `json:"id"`
	Date                  time.Time      `json:"date"`
	AppointmentTypeCounts map[string]int `json:"appointment_type_counts"`
	CheckInsCurrent       []int          `json:"check_ins_current"`
	CheckInsPrevious      []int          `json:"check_ins_previous"`
	Revenue               float64        `json:"revenue"`
	AvgWaitTime           float64        `json:"avg_wait_time"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnalyticRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if errs := validate.Struct(req); errs != nil {
			httpx.ValidationError(w, errs)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Date:                  req.Date,
			AppointmentTypeCounts: req.AppointmentTypeCounts,
			CheckInsCurrent:       req.CheckInsCurrent,
			CheckInsPrevious:      req.CheckInsPrevious,
			Revenue:               req.Revenue,
			AvgWaitTime:           req.AvgWaitTime,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, toResponse(a))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]analyticResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toResponse(a))
		}
		httpx.JSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "analyticID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "analytic not found")
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, toResponse(a))
	}
}

func getByDateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := dateutil.ParseDayParam(chi.URLParam(r, "date"))
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "date must be 'today', YYYY-MM-DD or RFC3339")
			return
		}

		a, err := svc.GetByDay(r.Context(), day)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, toResponse(a))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "analyticID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "analytic not found")
			return
		}

		var req updateAnalyticRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if errs := validate.Struct(req); errs != nil {
			httpx.ValidationError(w, errs)
			return
		}

		a, err := svc.Update(r.Context(), id, UpdateInput{
			Date:                  req.Date,
			AppointmentTypeCounts: req.AppointmentTypeCounts,
			CheckInsCurrent:       req.CheckInsCurrent,
			CheckInsPrevious:      req.CheckInsPrevious,
			Revenue:               req.Revenue,
			AvgWaitTime:           req.AvgWaitTime,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, toResponse(a))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "analyticID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "analytic not found")
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !deleted {
			httpx.Error(w, http.StatusNotFound, "analytic not found")
			return
		}
		httpx.NoContent(w)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "analytic not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	default:
		httpx.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func toResponse(a Analytic) analyticResponse {
	return analyticResponse{
		ID:                    a.ID,
		Date:                  a.Date,
		AppointmentTypeCounts: a.AppointmentTypeCounts,
		CheckInsCurrent:       a.CheckInsCurrent,
		CheckInsPrevious:      a.CheckInsPrevious,
		Revenue:               a.Revenue,
		AvgWaitTime:           a.AvgWaitTime,
	}
}
