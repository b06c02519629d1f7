package inventory

import (
	"encoding/json"
	"errors"
	"net/http"

	"vet-clinic-api/internal/platform/httpx"
	"vet-clinic-api/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/products", func(pr chi.Router) {
		pr.Get("/", listHandler(svc))
		pr.Post("/", createHandler(svc))

		pr.Get("/low-stock", lowStockHandler(svc))

		pr.Get("/{productID}", getHandler(svc))
		pr.Put("/{productID}", updateHandler(svc))
		pr.Delete("/{productID}", deleteHandler(svc))
	})
}

type createProductRequest struct {
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category"`
	SKU          string  `json:"sku"`
	Price        float64 `json:"price" validate:"gte=0"`
	Quantity     int     `json:"quantity" validate:"gte=0"`
	ReorderLevel int     `json:"reorder_level" validate:"gte=0"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url"`
}

type updateProductRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1"`
	Category     *string  `json:"category"`
	SKU          *string  `json:"sku"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	Quantity     *int     `json:"quantity" validate:"omitempty,gte=0"`
	ReorderLevel *int     `json:"reorder_level" validate:"omitempty,gte=0"`
	Description  *string  `json:"description"`
	ImageURL     *string  `json:"image_url"`
}

type productResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	SKU          string  `json:"sku"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	ReorderLevel int     `json:"reorder_level"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if errs := validate.Struct(req); errs != nil {
			httpx.ValidationError(w, errs)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:         req.Name,
			Category:     req.Category,
			SKU:          req.SKU,
			Price:        req.Price,
			Quantity:     req.Quantity,
			ReorderLevel: req.ReorderLevel,
			Description:  req.Description,
			ImageURL:     req.ImageURL,
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
		httpx.JSON(w, http.StatusOK, toResponseList(items))
	}
}

func lowStockHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListLowStock(r.Context())
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpx.JSON(w, http.StatusOK, toResponseList(items))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "productID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "product not found")
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

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "productID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "product not found")
			return
		}

		var req updateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if errs := validate.Struct(req); errs != nil {
			httpx.ValidationError(w, errs)
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput{
			Name:         req.Name,
			Category:     req.Category,
			SKU:          req.SKU,
			Price:        req.Price,
			Quantity:     req.Quantity,
			ReorderLevel: req.ReorderLevel,
			Description:  req.Description,
			ImageURL:     req.ImageURL,
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
		id, err := httpx.IDParam(r, "productID")
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "product not found")
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !deleted {
			httpx.Error(w, http.StatusNotFound, "product not found")
			return
		}
		httpx.NoContent(w)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "product not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	default:
		httpx.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func toResponse(p Product) productResponse {
	return productResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		SKU:          p.SKU,
		Price:        p.Price,
		Quantity:     p.Quantity,
		ReorderLevel: p.ReorderLevel,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
	}
}

func toResponseList(items []Product) []productResponse {
	out := make([]productResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toResponse(p))
	}
	return out
}
