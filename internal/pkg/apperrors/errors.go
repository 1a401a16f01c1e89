// Package apperrors defines the error kinds shared by repositories, services and handlers.
//
// Lower layers wrap one of these sentinels with fmt.Errorf("...: %w", ...) and the
// REST layer maps them to HTTP status codes with errors.Is.
package apperrors

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when input violates a business rule
	ErrValidation = errors.New("validation failed")
	// ErrConflict is returned when a write collides with existing state
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized is returned for missing or invalid credentials
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the caller lacks the required role
	ErrForbidden = errors.New("forbidden")
	// ErrUnavailable is returned when an external dependency is not configured or down
	ErrUnavailable = errors.New("service unavailable")
)
