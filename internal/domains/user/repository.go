package user

import "context"

// Repository is the user data access contract. Concrete
// implementation lives in repository/ (PostgreSQL via pgx); the
// interface keeps services mockable and the engine swappable.
type Repository interface {
	// Create inserts a new user and returns its assigned id.
	// Returns ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, u *User) (int64, error)

	// FindByID returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail returns ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail is the lookup-before-insert duplicate check.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
