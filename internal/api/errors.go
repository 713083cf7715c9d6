package api

import (
	"errors"
	"fmt"
)

// Common API request errors
var (
	// ErrMissingToken is returned when no authentication token is available.
	// Run "imobigest login" to start a session.
	ErrMissingToken = errors.New("authentication token not found")

	// ErrUnauthorized is returned when the API rejects the bearer token (HTTP 401).
	ErrUnauthorized = errors.New("authentication rejected by the API")

	// ErrForbidden is returned when the API denies access to the resource (HTTP 403).
	ErrForbidden = errors.New("access to the resource is forbidden")

	// ErrNotFound is returned when the requested resource or endpoint does not exist (HTTP 404).
	ErrNotFound = errors.New("resource not found")
)

// Error wraps a failed API request with the HTTP status and the
// server-provided message when one could be decoded.
type Error struct {
	// Op is the request that failed, as "METHOD /path".
	Op string

	// StatusCode is the HTTP status of the response, or 0 for transport failures.
	StatusCode int

	// Message is the "message" field of the error payload, if present.
	Message string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s failed: %s (HTTP %d)", e.Op, e.Message, e.StatusCode)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("api: %s failed: HTTP %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("api: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// IsFallbackTrigger reports whether err is an absent (404) or denied (403)
// endpoint, the two answers that let a caller fall back to an alternative
// endpoint instead of failing.
func IsFallbackTrigger(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrForbidden)
}

// statusErr maps well-known HTTP statuses to package sentinels so callers
// can branch with errors.Is.
func statusErr(code int) error {
	switch code {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}
