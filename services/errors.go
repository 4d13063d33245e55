package services

import "errors"

// Error kinds surfaced by the service layer. Handlers map these onto HTTP
// statuses; everything else is treated as an internal error.
var (
	// ErrNotFound covers both a missing record and a record owned by a
	// different user. Ownership checks are part of the lookup filter, so
	// the two cases are indistinguishable on purpose.
	ErrNotFound = errors.New("not found or unauthorized")

	ErrValidation = errors.New("validation failed")

	// ErrConflict signals a duplicate username or email at signup.
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, to avoid user enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
