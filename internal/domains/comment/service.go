package comment

import "context"

// Service is the comment business logic contract.
type Service interface {
	// Add persists a comment by authorID on postID.
	// Returns ErrEmptyComment for a blank or whitespace-only body.
	Add(ctx context.Context, postID, authorID int64, form CommentForm) (*Comment, error)

	// ListByPost returns a post's comments for the detail page.
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)
}
