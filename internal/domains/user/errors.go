package user

import (
	"errors"
	"net/http"
)

// Repository-level errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Service-level errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("user account is inactive")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes at the
// handler boundary. Duplicate email is a 400 conflict per the API
// contract, not a 409.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAccountInactive):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
