package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/DaSparky/daham-blogsite/internal/domains/comment"
)

type commentService struct {
	repo comment.Repository
}

func NewCommentService(repo comment.Repository) comment.Service {
	return &commentService{repo: repo}
}

func (s *commentService) Add(ctx context.Context, postID, authorID int64, form comment.CommentForm) (*comment.Comment, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(form.Text) == "" {
		return nil, comment.ErrEmptyComment
	}

	c := &comment.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     form.Text,
	}

	if _, err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return c, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]comment.Comment, error) {
	return s.repo.ListByPost(ctx, postID)
}
