package patients

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"vet-clinic-api/internal/domain/appointments"
	"vet-clinic-api/internal/platform/httpx"
	"vet-clinic-api/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes recibe también el service de citas: la recencia de un
// paciente se deriva de sus citas, no del registro del paciente.
func RegisterRoutes(r chi.Router, svc *Service, apptSvc *appointments.Service) {
	r.Route("/patients", func(pr chi.Router) {
		pr.Get("/", listHandler(svc))
		pr.Post("/", createHandler(svc))

		pr.Get("/recent/{limit}", recentHandler(svc, apptSvc))

		pr.Get("/{patientID}", getHandler(svc))
		pr.Put("/{patientID}", updateHandler(svc))
		pr.Delete("/{patientID}", deleteHandler(svc))
	})
}

type createPatientRequest struct {
	Name       string `json:"name" validate:"required"`
	Species    string `json:"species" validate:"required"`
	Breed      string `json:"breed"`
	Age        int    `json:"age" validate:"gte=0"`
	Gender     string `json:"gender"`
	OwnerName  string `json:"owner_name"`
	OwnerPhone string `json:"owner_phone"`
	ImageURL   string `json:"image_url"`
	Notes      string `json:"notes"`
}

type updatePatientRequest struct {
	// Punteros para update parcial: nil = no tocar.
	Name       *string `json:"name" validate:"omitempty,min=1"`
	Species    *string `json:"species"`
	Breed      *string `json:"breed"`
	Age        *int    `json:"age" validate:"omitempty,gte=0"`
	Gender     *string `json:"gender"`
	OwnerName  *string `json:"owner_name"`
	OwnerPhone *string `json:"owner_phone"`
	ImageURL   *string `json:"image_url"`
	Notes      *string `json:"notes"`
}

type patientResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Species    string `json:"species"`
	Breed      string `json:"breed"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	OwnerName  string `json:"owner_name"`
	OwnerPhone string `json:"owner_phone"`
	ImageURL   string `json:"image_url"`
	Notes      string `json:"notes"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if errs := validate.Struct(req); errs != nil {
			httpx.ValidationError(w, errs)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:       req.Name,
			Species:    req.Species,
			Breed:      req.Breed,
			Age:        req.Age,
			Gender:     req.Gender,
			OwnerName:  req.OwnerName,
			OwnerPhone: req.OwnerPhone,
			ImageURL:   req.ImageURL,
			Notes:      req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		httpx.JSON(w, http.StatusCreated, toResponse(p))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toResponse(p))
		}
		httpx.JSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "patientID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "patient not found")
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, toResponse(p))
	}
}

// recentHandler ordena las citas por fecha desc, saca los patient ids
// distintos en ese orden (primera aparición gana), resuelve cada uno y
// descarta referencias colgantes. Trunca a limit.
func recentHandler(svc *Service, apptSvc *appointments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := httpx.IDParam(r, "limit")
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}

		appts, err := apptSvc.List(r.Context())
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		sort.Slice(appts, func(i, j int) bool {
			return appts[i].Date.After(appts[j].Date)
		})

		seen := map[int64]struct{}{}
		out := make([]patientResponse, 0, limit)

		for _, a := range appts {
			if int64(len(out)) >= limit {
				break
			}
			if _, ok := seen[a.PatientID]; ok {
				continue
			}
			seen[a.PatientID] = struct{}{}

			p, err := svc.GetByID(r.Context(), a.PatientID)
			if err != nil {
				// paciente borrado: la cita quedó colgante, se omite
				continue
			}
			out = append(out, toResponse(p))
		}

		httpx.JSON(w, http.StatusOK, out)
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "patientID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "patient not found")
			return
		}

		var req updatePatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if errs := validate.Struct(req); errs != nil {
			httpx.ValidationError(w, errs)
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput{
			Name:       req.Name,
			Species:    req.Species,
			Breed:      req.Breed,
			Age:        req.Age,
			Gender:     req.Gender,
			OwnerName:  req.OwnerName,
			OwnerPhone: req.OwnerPhone,
			ImageURL:   req.ImageURL,
			Notes:      req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, toResponse(p))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "patientID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "patient not found")
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !deleted {
			httpx.Error(w, http.StatusNotFound, "patient not found")
			return
		}
		httpx.NoContent(w)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "patient not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	default:
		httpx.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func toResponse(p Patient) patientResponse {
	return patientResponse{
		ID:         p.ID,
		Name:       p.Name,
		Species:    p.Species,
		Breed:      p.Breed,
		Age:        p.Age,
		Gender:     p.Gender,
		OwnerName:  p.OwnerName,
		OwnerPhone: p.OwnerPhone,
		ImageURL:   p.ImageURL,
		Notes:      p.Notes,
	}
}
