package schedules

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
	r.Route("/schedules", func(sr chi.Router) {
		sr.Get("/", listHandler(svc))
		sr.Post("/", createHandler(svc))

		sr.Get("/staff/{staffID}", listByStaffHandler(svc))
		sr.Get("/date/{date}", listByDateHandler(svc))

		sr.Get("/{scheduleID}", getHandler(svc))
		sr.Put("/{scheduleID}", updateHandler(svc))
		sr.Delete("/{scheduleID}", deleteHandler(svc))
	})
}

type createScheduleRequest struct {
	StaffID     int64     `json:"staff_id" validate:"required,gt=0"`
	Date        time.Time `json:"date" validate:"required"`
	StartTime   string    `json:"start_time" validate:"required"`
	EndTime     string    `json:"end_time" validate:"required"`
	Type        string    `json:"type" validate:"required,oneof=appointments meeting surgery break admin"`
	Description string    `json:"description"`
}

type updateScheduleRequest struct {
	StaffID     *int64     `json:"staff_id" validate:"omitempty,gt=0"`
	Date        *time.Time `json:"date"`
	StartTime   *string    `json:"start_time"`
	EndTime     *string    `json:"end_time"`
	Type        *string    `json:"type" validate:"omitempty,oneof=appointments meeting surgery break admin"`
	Description *string    `json:"description"`
}

type scheduleResponse struct {
	ID          int64     `json:"id"`
	StaffID     int64     `json:"staff_id"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if errs := validate.Struct(req); errs != nil {
			httpx.ValidationError(w, errs)
			return
		}

		sch, err := svc.Create(r.Context(), CreateInput{
			StaffID:     req.StaffID,
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Type:        ActivityType(req.Type),
			Description: req.Description,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, toResponse(sch))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpx.JSON(w, http.StatusOK, toResponseList(items))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "scheduleID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "schedule not found")
			return
		}

		sch, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, toResponse(sch))
	}
}

func listByStaffHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		staffID, err := httpx.IDParam(r, "staffID")
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid staff id")
			return
		}

		items, err := svc.ListByStaff(r.Context(), staffID)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpx.JSON(w, http.StatusOK, toResponseList(items))
	}
}

func listByDateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := dateutil.ParseDayParam(chi.URLParam(r, "date"))
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "date must be 'today', YYYY-MM-DD or RFC3339")
			return
		}

		items, err := svc.ListByDay(r.Context(), day)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpx.JSON(w, http.StatusOK, toResponseList(items))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "scheduleID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "schedule not found")
			return
		}

		var req updateScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if errs := validate.Struct(req); errs != nil {
			httpx.ValidationError(w, errs)
			return
		}

		in := UpdateInput{
			StaffID:     req.StaffID,
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Description: req.Description,
		}
		if req.Type != nil {
			t := ActivityType(*req.Type)
			in.Type = &t
		}

		sch, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, toResponse(sch))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "scheduleID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "schedule not found")
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !deleted {
			httpx.Error(w, http.StatusNotFound, "schedule not found")
			return
		}
		httpx.NoContent(w)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "schedule not found")
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrBadTimeRange):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	default:
		httpx.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func toResponse(sch Schedule) scheduleResponse {
	return scheduleResponse{
		ID:          sch.ID,
		StaffID:     sch.StaffID,
		Date:        sch.Date,
		StartTime:   sch.StartTime,
		EndTime:     sch.EndTime,
		Type:        string(sch.Type),
		Description: sch.Description,
	}
}

func toResponseList(items []Schedule) []scheduleResponse {
	out := make([]scheduleResponse, 0, len(items))
	for _, sch := range items {
		out = append(out, toResponse(sch))
	}
	return out
}
