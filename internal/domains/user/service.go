package user

import "context"

// Service is the auth business logic contract. Session establishment
// is the HTTP layer's job: these methods return the resolved user and
// the handler binds it to the request's session.
type Service interface {
	// Register creates a new user with a hashed password.
	// Returns ErrEmailAlreadyExists if the email is taken.
	Register(ctx context.Context, form RegisterForm) (*User, error)

	// Login verifies credentials. Returns ErrInvalidEmail for an
	// unknown email and ErrWrongPassword for a hash mismatch.
	Login(ctx context.Context, form LoginForm) (*User, error)

	// GetByID resolves a session's user id to its record.
	GetByID(ctx context.Context, id int64) (*User, error)
}
