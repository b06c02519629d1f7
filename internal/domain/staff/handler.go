package staff

import (
	"encoding/json"
	"errors"
	"net/http"

	"vet-clinic-api/internal/platform/httpx"
	"vet-clinic-api/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/staff", func(sr chi.Router) {
		sr.Get("/", listHandler(svc))
		sr.Post("/", createHandler(svc))
		sr.Get("/{staffID}", getHandler(svc))
		sr.Put("/{staffID}", updateHandler(svc))
		sr.Delete("/{staffID}", deleteHandler(svc))
	})
}

type createStaffRequest struct {
	Name      string `json:"name" validate:"required"`
	Role      string `json:"role" validate:"required"`
	Specialty string `json:"specialty"`
	ImageURL  string `json:"image_url"`
	IsActive  *bool  `json:"is_active"`
}

type updateStaffRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	Role      *string `json:"role"`
	Specialty *string `json:"specialty"`
	ImageURL  *string `json:"image_url"`
	IsActive  *bool   `json:"is_active"`
}

type staffResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Specialty string `json:"specialty"`
	ImageURL  string `json:"image_url"`
	IsActive  bool   `json:"is_active"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createStaffRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if errs := validate.Struct(req); errs != nil {
			httpx.ValidationError(w, errs)
			return
		}

		m, err := svc.Create(r.Context(), CreateInput{
			Name:      req.Name,
			Role:      req.Role,
			Specialty: req.Specialty,
			ImageURL:  req.ImageURL,
			IsActive:  req.IsActive,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, toResponse(m))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]staffResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toResponse(m))
		}
		httpx.JSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "staffID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "staff member not found")
			return
		}

		m, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, toResponse(m))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "staffID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "staff member not found")
			return
		}

		var req updateStaffRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if errs := validate.Struct(req); errs != nil {
			httpx.ValidationError(w, errs)
			return
		}

		m, err := svc.Update(r.Context(), id, UpdateInput{
			Name:      req.Name,
			Role:      req.Role,
			Specialty: req.Specialty,
			ImageURL:  req.ImageURL,
			IsActive:  req.IsActive,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, toResponse(m))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "staffID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "staff member not found")
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !deleted {
			httpx.Error(w, http.StatusNotFound, "staff member not found")
			return
		}
		httpx.NoContent(w)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "staff member not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	default:
		httpx.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func toResponse(m Member) staffResponse {
	return staffResponse{
		ID:        m.ID,
		Name:      m.Name,
		Role:      m.Role,
		Specialty: m.Specialty,
		ImageURL:  m.ImageURL,
		IsActive:  m.IsActive,
	}
}
