package auth

import "errors"

// Common session errors
var (
	// ErrNoSession is returned when no session file exists.
	// Run "imobigest login" to start one.
	ErrNoSession = errors.New("no active session: run 'imobigest login' first")

	// ErrSessionExpired is returned when the stored token's exp claim has passed.
	ErrSessionExpired = errors.New("session expired: run 'imobigest login' again")

	// ErrInvalidCredentials is returned when the API rejects the login request.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
