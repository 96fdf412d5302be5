package comment

import "context"

// Repository is the comment data access contract. Comments are
// append-only: no update or single-row delete exists.
type Repository interface {
	// Create inserts a comment and returns its assigned id.
	Create(ctx context.Context, c *Comment) (int64, error)

	// ListByPost returns all comments on a post, oldest first.
	// A post id with no comments (including a deleted post's id)
	// yields an empty slice, never an error.
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)

	// DeleteByPost removes every comment on a post; used when the
	// post itself is deleted.
	DeleteByPost(ctx context.Context, postID int64) error
}
