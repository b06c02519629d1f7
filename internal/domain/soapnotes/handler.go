package soapnotes

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vet-clinic-api/internal/platform/httpx"
	"vet-clinic-api/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/soap-notes", func(nr chi.Router) {
		nr.Get("/", listHandler(svc))
		nr.Post("/", createHandler(svc))

		nr.Get("/patient/{patientID}", listByPatientHandler(svc))

		nr.Get("/{noteID}", getHandler(svc))
		nr.Put("/{noteID}", updateHandler(svc))
		nr.Delete("/{noteID}", deleteHandler(svc))
	})
}

type createNoteRequest struct {
	PatientID     int64  `json:"patient_id" validate:"required,gt=0"`
	AppointmentID *int64 `json:"appointment_id" validate:"omitempty,gt=0"`
	DoctorID      int64  `json:"doctor_id" validate:"required,gt=0"`
	Subjective    string `json:"subjective"`
	Objective     string `json:"objective"`
	Assessment    string `json:"assessment"`
	Plan          string `json:"plan"`
}

type updateNoteRequest struct {
	Subjective *string `json:"subjective"`
	Objective  *string `json:"objective"`
	Assessment *string `json:"assessment"`
	Plan       *string `json:"plan"`
}

type noteResponse struct {
	ID            int64     `json:"id"`
	PatientID     int64     `json:"patient_id"`
	AppointmentID *int64    `json:"appointment_id,omitempty"`
	DoctorID      int64     `json:"doctor_id"`
	Subjective    string    `json:"subjective"`
	Objective     string    `json:"objective"`
	Assessment    string    `json:"assessment"`
	Plan          string    `json:"plan"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if errs := validate.Struct(req); errs != nil {
			httpx.ValidationError(w, errs)
			return
		}

		n, err := svc.Create(r.Context(), CreateInput{
			PatientID:     req.PatientID,
			AppointmentID: req.AppointmentID,
			DoctorID:      req.DoctorID,
			Subjective:    req.Subjective,
			Objective:     req.Objective,
			Assessment:    req.Assessment,
			Plan:          req.Plan,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, toResponse(n))
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

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "noteID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "soap note not found")
			return
		}

		n, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, toResponse(n))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "noteID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "soap note not found")
			return
		}

		var req updateNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		n, err := svc.Update(r.Context(), id, UpdateInput{
			Subjective: req.Subjective,
			Objective:  req.Objective,
			Assessment: req.Assessment,
			Plan:       req.Plan,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, toResponse(n))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "noteID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "soap note not found")
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !deleted {
			httpx.Error(w, http.StatusNotFound, "soap note not found")
			return
		}
		httpx.NoContent(w)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "soap note not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	default:
		httpx.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func toResponse(n Note) noteResponse {
	return noteResponse{
		ID:            n.ID,
		PatientID:     n.PatientID,
		AppointmentID: n.AppointmentID,
		DoctorID:      n.DoctorID,
		Subjective:    n.Subjective,
		Objective:     n.Objective,
		Assessment:    n.Assessment,
		Plan:          n.Plan,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func toResponseList(items []Note) []noteResponse {
	out := make([]noteResponse, 0, len(items))
	for _, n := range items {
		out = append(out, toResponse(n))
	}
	return out
}
