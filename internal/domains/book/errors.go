package book

import (
	"errors"
	"net/http"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrCategoryNotFound = errors.New("category not found")
)

func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrCategoryNotFound):
		// A create/update referencing a missing category is a client
		// payload problem, reported as a field error by the service.
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
