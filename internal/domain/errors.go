package domain

import "errors"

// Closed set of failure kinds produced by the service layer. Handlers map
// these to HTTP status codes; everything outside the set is treated as an
// internal error.
var (
	// ErrInvalidCredentials covers unknown email, wrong password and
	// inactive accounts alike, so login failures stay non-enumerable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenInvalid covers tampered, malformed, expired and
	// logged-out tokens uniformly.
	ErrTokenInvalid = errors.New("invalid token")

	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("invalid input")

	// ErrNotActive is returned when deactivating a token the registry
	// does not hold.
	ErrNotActive = errors.New("token not active")
)
