package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// Service-level (business logic) errors
var (
	// Login with an email no user has.
	ErrInvalidEmail = errors.New("email is not registered")

	// Login with a registered email but a non-matching password.
	ErrWrongPassword = errors.New("wrong password")
)
