package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DaSparky/daham-blogsite/internal/domains/post"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) post.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) (int64, error) {
	query := `
		INSERT INTO blog_posts (author_id, title, subtitle, date, body, img_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		p.AuthorID, p.Title, p.Subtitle, p.Date, p.Body, p.ImgURL,
	).Scan(&p.ID)
	if err != nil {
		if isTitleConflict(err) {
			return 0, post.ErrTitleAlreadyExists
		}
		return 0, fmt.Errorf("create post: %w", err)
	}

	return p.ID, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*post.Post, error) {
	query := `
		SELECT p.id, p.author_id, u.name, p.title, p.subtitle, p.date, p.body, p.img_url
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	var p post.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.AuthorID, &p.AuthorName,
		&p.Title, &p.Subtitle, &p.Date, &p.Body, &p.ImgURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, post.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}

	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]post.Post, error) {
	query := `
		SELECT p.id, p.author_id, u.name, p.title, p.subtitle, p.date, p.body, p.img_url
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []post.Post
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(
			&p.ID, &p.AuthorID, &p.AuthorName,
			&p.Title, &p.Subtitle, &p.Date, &p.Body, &p.ImgURL,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

func (r *postgresRepository) ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM blog_posts WHERE title = $1 AND id <> $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, title, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check title exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post) error {
	query := `
		UPDATE blog_posts
		SET title = $1, subtitle = $2, img_url = $3, body = $4
		WHERE id = $5
	`

	tag, err := r.pool.Exec(ctx, query, p.Title, p.Subtitle, p.ImgURL, p.Body, p.ID)
	if err != nil {
		if isTitleConflict(err) {
			return post.ErrTitleAlreadyExists
		}
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

// isTitleConflict reports a unique violation on blog_posts.title.
func isTitleConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" &&
		strings.Contains(pgErr.ConstraintName, "title")
}
