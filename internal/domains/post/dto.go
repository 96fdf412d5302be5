package post

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// PostForm is the new-post / edit-post form body. Author carries the
// author's display name for the form; authorship itself is always
// bound to the authenticated creator and never reassigned on edit.
type PostForm struct {
	Title    string `form:"title"`
	Subtitle string `form:"subtitle"`
	ImgURL   string `form:"img_url"`
	Author   string `form:"author"`
	Body     string `form:"body"`
}

func (f PostForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&f.Subtitle,
			validation.Required.Error("subtitle is required"),
		),
		validation.Field(&f.ImgURL,
			validation.Required.Error("image URL is required"),
			is.URL.Error("image URL must be a valid URL"),
		),
		validation.Field(&f.Author,
			validation.Required.Error("author name is required"),
		),
		validation.Field(&f.Body,
			validation.Required.Error("post content is required"),
		),
	)
}
