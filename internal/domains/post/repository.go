package post

import "context"

// Repository is the post data access contract. Reads join users so
// every returned Post already carries its author's display name.
type Repository interface {
	// Create inserts a post and returns its assigned id.
	// Returns ErrTitleAlreadyExists on a duplicate title.
	Create(ctx context.Context, p *Post) (int64, error)

	// FindByID returns ErrPostNotFound if no such post exists.
	FindByID(ctx context.Context, id int64) (*Post, error)

	// List returns all posts in storage order.
	List(ctx context.Context) ([]Post, error)

	// ExistsByTitle reports whether any post other than excludeID
	// already uses the title. Pass excludeID 0 for creation checks.
	ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error)

	// Update overwrites title, subtitle, image URL and body in
	// place. Returns ErrPostNotFound if the post does not exist and
	// ErrTitleAlreadyExists on a duplicate title.
	Update(ctx context.Context, p *Post) error

	// Delete removes the post row.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id int64) error
}
