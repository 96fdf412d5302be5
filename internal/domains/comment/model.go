package comment

import "html/template"

// Comment is an append-only child record of a post. AuthorName and
// AuthorEmail come from an explicit join against users; the email
// feeds the gravatar shown beside the comment.
type Comment struct {
	ID          int64  `db:"id"`
	PostID      int64  `db:"post_id"`
	AuthorID    int64  `db:"author_id"`
	AuthorName  string `db:"author_name"`
	AuthorEmail string `db:"author_email"`
	Text        string `db:"text"`
}

// TextHTML exposes the rich-text comment body for rendering.
func (c *Comment) TextHTML() template.HTML {
	return template.HTML(c.Text)
}
