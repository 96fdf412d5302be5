package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DaSparky/daham-blogsite/internal/domains/comment"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *comment.Comment) (int64, error) {
	query := `
		INSERT INTO comments (author_id, post_id, text)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, c.AuthorID, c.PostID, c.Text).Scan(&c.ID)
	if err != nil {
		return 0, fmt.Errorf("create comment: %w", err)
	}

	return c.ID, nil
}

func (r *postgresRepository) ListByPost(ctx context.Context, postID int64) ([]comment.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, u.name, u.email, c.text
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.id
	`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := []comment.Comment{}
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(
			&c.ID, &c.PostID, &c.AuthorID,
			&c.AuthorName, &c.AuthorEmail, &c.Text,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return comments, nil
}

func (r *postgresRepository) DeleteByPost(ctx context.Context, postID int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("delete comments by post: %w", err)
	}
	return nil
}
