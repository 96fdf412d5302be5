package service

import (
	"context"
	"fmt"
	"time"

	"github.com/DaSparky/daham-blogsite/internal/domains/comment"
	"github.com/DaSparky/daham-blogsite/internal/domains/post"
)

type postService struct {
	repo     post.Repository
	comments comment.Repository
	now      func() time.Time
}

// NewPostService wires the post repository plus the comment
// repository, which Delete uses to remove dependent comments in the
// same request instead of leaving orphaned rows behind.
func NewPostService(repo post.Repository, comments comment.Repository) post.Service {
	return &postService{
		repo:     repo,
		comments: comments,
		now:      time.Now,
	}
}

func (s *postService) List(ctx context.Context) ([]post.Post, error) {
	return s.repo.List(ctx)
}

func (s *postService) Get(ctx context.Context, id int64) (*post.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *postService) Create(ctx context.Context, form post.PostForm, authorID int64) (*post.Post, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByTitle(ctx, form.Title, 0)
	if err != nil {
		return nil, fmt.Errorf("check title exists: %w", err)
	}
	if exists {
		return nil, post.ErrTitleAlreadyExists
	}

	p := &post.Post{
		AuthorID: authorID,
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Date:     s.now().Format(post.DateFormat),
		Body:     form.Body,
		ImgURL:   form.ImgURL,
	}

	if _, err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return p, nil
}

// Update rewrites the post's own fields only. The publication date,
// the author association and the author's display name stay as they
// are; the form's Author field is presentational.
func (s *postService) Update(ctx context.Context, id int64, form post.PostForm) (*post.Post, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByTitle(ctx, form.Title, id)
	if err != nil {
		return nil, fmt.Errorf("check title exists: %w", err)
	}
	if exists {
		return nil, post.ErrTitleAlreadyExists
	}

	p.Title = form.Title
	p.Subtitle = form.Subtitle
	p.ImgURL = form.ImgURL
	p.Body = form.Body

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Delete removes the post's comments first, then the post itself.
// The schema-level cascade covers the same ground; doing it here
// keeps the behavior explicit and engine-independent.
func (s *postService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.comments.DeleteByPost(ctx, id); err != nil {
		return fmt.Errorf("delete post comments: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
