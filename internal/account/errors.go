package account

import "errors"

var (
	// ErrDuplicateEmail is returned when registering an email that is
	// already taken (case-insensitively).
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrInvalidCredentials deliberately conflates "unknown email" and
	// "wrong password"; callers must not leak which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrValidation = errors.New("validation error")
)
