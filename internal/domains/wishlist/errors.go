package wishlist

import (
	"errors"
	"net/http"
)

var (
	ErrEntryNotFound  = errors.New("wishlist entry not found")
	ErrDuplicateEntry = errors.New("book is already in wishlist")
	ErrBookNotFound   = errors.New("book not found")
)

// GetHTTPStatusCode maps wishlist domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrEntryNotFound), errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateEntry):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
