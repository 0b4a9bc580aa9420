package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates a missing or rejected session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNetwork indicates the backend could not be reached or timed out.
	ErrNetwork = errors.New("network error")

	// ErrInvalidResponse indicates the backend answered with something
	// other than the expected JSON document.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrInvalidCafeID indicates a cafe id that is not a positive integer.
	ErrInvalidCafeID = errors.New("invalid cafe id")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API %s %s returned %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// Unwrap lets errors.Is match ErrInvalidResponse, or ErrUnauthorized for 401/403.
func (e *APIError) Unwrap() error {
	if e.Status == 401 || e.Status == 403 {
		return ErrUnauthorized
	}
	return ErrInvalidResponse
}
