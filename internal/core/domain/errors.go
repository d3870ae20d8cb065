package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrUsernameRequired indicates no username was supplied or configured.
	ErrUsernameRequired = errors.New("username required")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSnapshot indicates the offline snapshot artifact does not exist.
	ErrNoSnapshot = errors.New("no snapshot")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
