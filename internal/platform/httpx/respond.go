package httpx

import (
	"encoding/json"
	"net/http"

	"vet-clinic-api/internal/platform/validate"
)

// errorResponse es el sobre de error de toda la API: {message} y,
// para fallos de validación, {message, errors: [{field, message}]}.
type errorResponse struct {
	Message string                `json:"message"`
	Errors  []validate.FieldError `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorResponse{Message: message})
}

func ValidationError(w http.ResponseWriter, errs []validate.FieldError) {
	JSON(w, http.StatusBadRequest, errorResponse{
		Message: "validation failed",
		Errors:  errs,
	})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
