package supabase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidConfig = errors.New("invalid client configuration")

	// ErrNoSession is returned by CurrentUser when no identity is attached
	// to the request.
	ErrNoSession = errors.New("no authenticated session")

	// Remote error classes, derived from the backend's error codes.
	ErrDuplicate        = errors.New("unique constraint violation")
	ErrInvalidReference = errors.New("foreign key violation")
	ErrPermissionDenied = errors.New("permission denied")
	ErrCheckViolation   = errors.New("database validation failed")
)

// APIError is a failed call to the table API, carrying the backend's
// machine-readable error code.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    string
	Hint       string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: %s (code %s, status %d)", e.Message, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("supabase: %s (status %d)", e.Message, e.StatusCode)
}

// Unwrap classifies the backend code so that errors.Is works against the
// package sentinels.
func (e *APIError) Unwrap() error {
	switch {
	case e.Code == "23505":
		return ErrDuplicate
	case e.Code == "23503":
		return ErrInvalidReference
	case e.Code == "42501" || e.StatusCode == 401 || e.StatusCode == 403:
		return ErrPermissionDenied
	case strings.HasPrefix(e.Code, "P0001"):
		return ErrCheckViolation
	default:
		return nil
	}
}
