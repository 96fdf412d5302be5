package post

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")

	// Titles are unique across all posts; creating or renaming a
	// post onto an existing title is rejected.
	ErrTitleAlreadyExists = errors.New("a post with this title already exists")
)
