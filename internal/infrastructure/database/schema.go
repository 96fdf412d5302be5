package database

import (
	"context"
	"fmt"
)

// Comments carry ON DELETE CASCADE so removing a post can never leave
// orphaned comment rows behind; listing comments for a deleted post
// returns an empty set instead of erroring.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS blog_posts (
	id         BIGSERIAL PRIMARY KEY,
	author_id  BIGINT NOT NULL REFERENCES users(id),
	title      TEXT NOT NULL UNIQUE,
	subtitle   TEXT NOT NULL,
	date       TEXT NOT NULL,
	body       TEXT NOT NULL,
	img_url    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS comments (
	id        BIGSERIAL PRIMARY KEY,
	author_id BIGINT NOT NULL REFERENCES users(id),
	post_id   BIGINT NOT NULL REFERENCES blog_posts(id) ON DELETE CASCADE,
	text      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_blog_posts_author_id ON blog_posts(author_id);
CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments(post_id);
`

// EnsureSchema creates the three tables on startup if they do not
// exist yet. The unique constraints on users.email and
// blog_posts.title are the storage-level safety net behind the
// explicit existence checks the services perform first.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
