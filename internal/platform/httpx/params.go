package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var ErrBadParam = errors.New("invalid path parameter")

// IDParam lee un path param numérico (ids de entidad, limits).
func IDParam(r *http.Request, key string) (int64, error) {
	n, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrBadParam
	}
	return n, nil
}
