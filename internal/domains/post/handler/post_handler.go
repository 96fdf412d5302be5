package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DaSparky/daham-blogsite/internal/domains/comment"
	"github.com/DaSparky/daham-blogsite/internal/domains/post"
	"github.com/DaSparky/daham-blogsite/internal/shared/middleware"
	"github.com/DaSparky/daham-blogsite/internal/shared/render"
	"github.com/DaSparky/daham-blogsite/internal/shared/utils"
	"github.com/DaSparky/daham-blogsite/pkg/logger"
)

const gravatarSize = 100

// PostHandler serves the index, post detail (with comments) and the
// admin-gated post management routes.
type PostHandler struct {
	posts    post.Service
	comments comment.Service
	renderer *render.Renderer
}

func NewPostHandler(posts post.Service, comments comment.Service, renderer *render.Renderer) *PostHandler {
	return &PostHandler{
		posts:    posts,
		comments: comments,
		renderer: renderer,
	}
}

// commentView pairs a comment with its author's avatar for the post
// detail template.
type commentView struct {
	comment.Comment
	GravatarURL string
}

// Index handles GET /.
func (h *PostHandler) Index(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "index.html", gin.H{
		"Posts": posts,
	})
}

// Show handles GET /post/:post_id.
func (h *PostHandler) Show(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	p, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		h.postError(c, err)
		return
	}

	comments, err := h.comments.ListByPost(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err)
		return
	}

	views := make([]commentView, 0, len(comments))
	for _, cm := range comments {
		views = append(views, commentView{
			Comment:     cm,
			GravatarURL: utils.GravatarURL(cm.AuthorEmail, gravatarSize),
		})
	}

	h.renderer.HTML(c, http.StatusOK, "post.html", gin.H{
		"Post":     p,
		"Comments": views,
		"Form":     comment.CommentForm{},
	})
}

// AddComment handles POST /post/:post_id. Anonymous callers are
// flashed toward login; an empty body never creates a row.
func (h *PostHandler) AddComment(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	if _, err := h.posts.Get(c.Request.Context(), id); err != nil {
		h.postError(c, err)
		return
	}

	u := middleware.CurrentUser(c)
	if u == nil {
		h.renderer.Flash(c, "You need to Login to comment")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	var form comment.CommentForm
	_ = c.ShouldBind(&form)

	if _, err := h.comments.Add(c.Request.Context(), id, u.ID, form); err != nil {
		if errors.Is(err, comment.ErrEmptyComment) {
			h.renderer.Flash(c, "Your comment is empty")
			c.Redirect(http.StatusSeeOther, "/post/"+strconv.FormatInt(id, 10))
			return
		}
		h.serverError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/post/"+strconv.FormatInt(id, 10))
}

// New handles GET /new-post (admin only).
func (h *PostHandler) New(c *gin.Context) {
	form := post.PostForm{}
	if u := middleware.CurrentUser(c); u != nil {
		form.Author = u.Name
	}

	h.renderer.HTML(c, http.StatusOK, "make-post.html", gin.H{
		"Heading": "New Post",
		"Action":  "/new-post",
		"Form":    form,
	})
}

// Create handles POST /new-post (admin only).
func (h *PostHandler) Create(c *gin.Context) {
	var form post.PostForm
	_ = c.ShouldBind(&form)

	if err := form.Validate(); err != nil {
		h.renderMakePost(c, "New Post", "/new-post", form, render.FieldErrors(err))
		return
	}

	u := middleware.CurrentUser(c)
	if _, err := h.posts.Create(c.Request.Context(), form, u.ID); err != nil {
		if errors.Is(err, post.ErrTitleAlreadyExists) {
			h.renderMakePost(c, "New Post", "/new-post", form,
				map[string]string{"Title": err.Error()})
			return
		}
		h.serverError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Edit handles GET /edit-post/:post_id (admin only), pre-filling the
// form from the stored post.
func (h *PostHandler) Edit(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	p, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		h.postError(c, err)
		return
	}

	form := post.PostForm{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		ImgURL:   p.ImgURL,
		Author:   p.AuthorName,
		Body:     p.Body,
	}

	h.renderer.HTML(c, http.StatusOK, "make-post.html", gin.H{
		"Heading": "Edit Post",
		"Action":  "/edit-post/" + strconv.FormatInt(id, 10),
		"Form":    form,
	})
}

// Update handles POST /edit-post/:post_id (admin only).
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	action := "/edit-post/" + strconv.FormatInt(id, 10)

	var form post.PostForm
	_ = c.ShouldBind(&form)

	if err := form.Validate(); err != nil {
		h.renderMakePost(c, "Edit Post", action, form, render.FieldErrors(err))
		return
	}

	if _, err := h.posts.Update(c.Request.Context(), id, form); err != nil {
		switch {
		case errors.Is(err, post.ErrTitleAlreadyExists):
			h.renderMakePost(c, "Edit Post", action, form,
				map[string]string{"Title": err.Error()})
		case errors.Is(err, post.ErrPostNotFound):
			h.notFound(c)
		default:
			h.serverError(c, err)
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/post/"+strconv.FormatInt(id, 10))
}

// Delete handles GET /delete/:post_id (admin only).
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		h.postError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// About handles GET /about.
func (h *PostHandler) About(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "about.html", nil)
}

func (h *PostHandler) renderMakePost(c *gin.Context, heading, action string, form post.PostForm, errs map[string]string) {
	h.renderer.HTML(c, http.StatusOK, "make-post.html", gin.H{
		"Heading": heading,
		"Action":  action,
		"Form":    form,
		"Errors":  errs,
	})
}

// postID parses the :post_id route parameter; a malformed id renders
// the 404 page like a nonexistent post would.
func (h *PostHandler) postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil || id <= 0 {
		h.notFound(c)
		return 0, false
	}
	return id, true
}

func (h *PostHandler) postError(c *gin.Context, err error) {
	if errors.Is(err, post.ErrPostNotFound) {
		h.notFound(c)
		return
	}
	h.serverError(c, err)
}

func (h *PostHandler) notFound(c *gin.Context) {
	h.renderer.HTML(c, http.StatusNotFound, "error.html", gin.H{
		"Status":  http.StatusNotFound,
		"Message": "The post you are looking for does not exist.",
	})
}

func (h *PostHandler) serverError(c *gin.Context, err error) {
	logger.Error("post handler error", err)
	h.renderer.HTML(c, http.StatusInternalServerError, "error.html", gin.H{
		"Status":  http.StatusInternalServerError,
		"Message": "Something went wrong. Please try again.",
	})
}
