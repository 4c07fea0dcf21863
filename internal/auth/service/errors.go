package service

import "errors"

// Login failures. Unknown user and wrong password share ErrBadCredentials so
// the two cannot be told apart.
var (
	ErrInvalidRequest  = errors.New("username and password are required")
	ErrBadCredentials  = errors.New("invalid username or password")
	ErrAccountDisabled = errors.New("account is disabled")
)

// Authentication decision failures. Callers treat all of them as "no
// principal"; the kinds exist for logs and metrics.
var (
	ErrTokenInvalid      = errors.New("session token invalid")
	ErrSessionSuperseded = errors.New("session superseded or logged out")
)

var (
	// ErrInfrastructure wraps user-store and registry failures.
	ErrInfrastructure = errors.New("infrastructure unavailable")

	// ErrUserNotFound means a live session points at a user that no longer exists.
	ErrUserNotFound = errors.New("user not found")
)
