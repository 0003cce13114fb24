// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/pantry/pkg/httpx"
	productdomain "github.com/ghuser/pantry/services/product/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors, whose
// message is replaced by the status text.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.ClientMessage(err, status))
}

func mapErrorToStatus(err error) int {
	switch {
	// Corrupt rows wrap the domain error that exposed them; storage faults win.
	case errors.Is(err, productdomain.ErrCorruptData),
		errors.Is(err, productdomain.ErrPersistence):
		return http.StatusInternalServerError // 500
	case errors.Is(err, productdomain.ErrProductNotFound),
		errors.Is(err, productdomain.ErrStashItemNotFound),
		errors.Is(err, productdomain.ErrStashItemDoesntExist):
		return http.StatusNotFound // 404
	case errors.Is(err, productdomain.ErrProductAlreadyExists),
		errors.Is(err, productdomain.ErrStashItemExists),
		errors.Is(err, productdomain.ErrDuplicateExpiryDate):
		return http.StatusConflict // 409
	case errors.Is(err, productdomain.ErrInvalidProductID),
		errors.Is(err, productdomain.ErrInvalidBrand),
		errors.Is(err, productdomain.ErrInvalidQuantity),
		errors.Is(err, productdomain.ErrInvalidExpiryDate),
		errors.Is(err, productdomain.ErrInvalidStashItemID):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, productdomain.ErrInvalidDateInterval),
		errors.Is(err, productdomain.ErrProductIDMismatch):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
