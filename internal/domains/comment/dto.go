package comment

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CommentForm is the comment box on the post detail page. The field
// intentionally carries no required rule; emptiness is decided by the
// service after trimming, not by form validation.
type CommentForm struct {
	Text string `form:"comment"`
}

func (f CommentForm) Validate() error {
	return validation.ValidateStruct(&f)
}
