package appointments

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
	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listHandler(svc))
		ar.Post("/", createHandler(svc))

		ar.Get("/date/{date}", listByDateHandler(svc))
		ar.Get("/patient/{patientID}", listByPatientHandler(svc))
		ar.Get("/doctor/{doctorID}", listByDoctorHandler(svc))

		ar.Get("/{appointmentID}", getHandler(svc))
		ar.Put("/{appointmentID}", updateHandler(svc))
		ar.Delete("/{appointmentID}", deleteHandler(svc))
		ar.Patch("/{appointmentID}/status", updateStatusHandler(svc))
	})
}

type createAppointmentRequest struct {
	PatientID int64     `json:"patient_id" validate:"required,gt=0"`
	DoctorID  int64     `json:"doctor_id" validate:"required,gt=0"`
	Date      time.Time `json:"date" validate:"required"`
	Type      string    `json:"type" validate:"required,oneof=checkup vaccination surgery dental follow_up emergency"`
	Status    string    `json:"status" validate:"omitempty,oneof=scheduled in_progress completed canceled"`
	Notes     string    `json:"notes"`
}

type updateAppointmentRequest struct {
	// Punteros para update parcial: nil = no tocar.
	PatientID *int64     `json:"patient_id" validate:"omitempty,gt=0"`
	DoctorID  *int64     `json:"doctor_id" validate:"omitempty,gt=0"`
	Date      *time.Time `json:"date"`
	Type      *string    `json:"type" validate:"omitempty,oneof=checkup vaccination surgery dental follow_up emergency"`
	Status    *string    `json:"status" validate:"omitempty,oneof=scheduled in_progress completed canceled"`
	Notes     *string    `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type appointmentResponse struct {
	ID        int64     `json:"id"`
	PatientID int64     `json:"patient_id"`
	DoctorID  int64     `json:"doctor_id"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if errs := validate.Struct(req); errs != nil {
			httpx.ValidationError(w, errs)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			PatientID: req.PatientID,
			DoctorID:  req.DoctorID,
			Date:      req.Date,
			Type:      Type(req.Type),
			Status:    Status(req.Status),
			Notes:     req.Notes,
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
		httpx.JSON(w, http.StatusOK, toResponseList(items))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "appointmentID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "appointment not found")
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

func listByPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID, err := httpx.IDParam(r, "patientID")
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid patient id")
			return
		}

		items, err := svc.ListByPatient(r.Context(), patientID)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpx.JSON(w, http.StatusOK, toResponseList(items))
	}
}

func listByDoctorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doctorID, err := httpx.IDParam(r, "doctorID")
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid doctor id")
			return
		}

		items, err := svc.ListByDoctor(r.Context(), doctorID)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpx.JSON(w, http.StatusOK, toResponseList(items))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "appointmentID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "appointment not found")
			return
		}

		var req updateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if errs := validate.Struct(req); errs != nil {
			httpx.ValidationError(w, errs)
			return
		}

		in := UpdateInput{
			PatientID: req.PatientID,
			DoctorID:  req.DoctorID,
			Date:      req.Date,
			Notes:     req.Notes,
		}
		if req.Type != nil {
			t := Type(*req.Type)
			in.Type = &t
		}
		if req.Status != nil {
			st := Status(*req.Status)
			in.Status = &st
		}

		a, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, toResponse(a))
	}
}

func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "appointmentID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "appointment not found")
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		// Gate del enum antes de tocar el store
		if !ValidStatus(Status(req.Status)) {
			httpx.Error(w, http.StatusBadRequest, "status must be one of: scheduled, in_progress, completed, canceled")
			return
		}

		a, err := svc.UpdateStatus(r.Context(), id, Status(req.Status))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, toResponse(a))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "appointmentID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "appointment not found")
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !deleted {
			httpx.Error(w, http.StatusNotFound, "appointment not found")
			return
		}
		httpx.NoContent(w)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "appointment not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	default:
		httpx.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func toResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:        a.ID,
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
		Date:      a.Date,
		Type:      string(a.Type),
		Status:    string(a.Status),
		Notes:     a.Notes,
	}
}

func toResponseList(items []Appointment) []appointmentResponse {
	out := make([]appointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toResponse(a))
	}
	return out
}
