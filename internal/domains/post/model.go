package post

import "html/template"

// Post is a blog post. Date is the human-readable calendar stamp
// fixed when the post is created ("January 02, 2006"), never updated.
// AuthorName is resolved by an explicit join, not a back-reference.
type Post struct {
	ID         int64  `db:"id"`
	AuthorID   int64  `db:"author_id"`
	AuthorName string `db:"author_name"`
	Title      string `db:"title"`
	Subtitle   string `db:"subtitle"`
	Date       string `db:"date"`
	Body       string `db:"body"`
	ImgURL     string `db:"img_url"`
}

// DateFormat is the layout posts are stamped with at creation.
// The day is zero-padded: "August 05, 2026".
const DateFormat = "January 02, 2006"

// BodyHTML exposes the stored rich text for template rendering.
// The body comes from the admin's rich-text editor, so it is trusted
// markup by construction.
func (p *Post) BodyHTML() template.HTML {
	return template.HTML(p.Body)
}
