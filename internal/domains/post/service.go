package post

import "context"

// Service is the post business logic contract. All mutations sit
// behind the admin gate at the route layer; the service itself only
// enforces data rules (title uniqueness, date stamping, authorship).
type Service interface {
	// List returns all posts for the index page.
	List(ctx context.Context) ([]Post, error)

	// Get returns ErrPostNotFound if no such post exists.
	Get(ctx context.Context, id int64) (*Post, error)

	// Create stamps today's date and binds authorship to authorID.
	Create(ctx context.Context, form PostForm, authorID int64) (*Post, error)

	// Update overwrites the post's own fields. The author
	// association and the author's display name are untouched.
	Update(ctx context.Context, id int64, form PostForm) (*Post, error)

	// Delete removes the post and its comments.
	Delete(ctx context.Context, id int64) error
}
