// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/itemflow/pkg/httpx"
	itemdomain "github.com/ghuser/itemflow/services/item/domain"
)

// WriteError maps err to an HTTP status code and writes the JSON error envelope.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	httpx.JSONError(w, r, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, itemdomain.ErrDuplicateEmail):
		return http.StatusConflict // 409
	case errors.Is(err, itemdomain.ErrInvalidItem),
		errors.Is(err, itemdomain.ErrEmailNotDeliverable):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
