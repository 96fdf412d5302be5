package comment

import "errors"

// ErrEmptyComment rejects a blank submission. The comment form itself
// declares no required rule, so the service is the gate that keeps
// empty rows out of storage.
var ErrEmptyComment = errors.New("comment is empty")
