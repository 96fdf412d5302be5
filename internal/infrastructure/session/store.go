package session

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when a token does not resolve to a
// live session (expired, destroyed, or never issued). Callers treat
// the request as anonymous.
var ErrSessionNotFound = errors.New("session not found")

// Store is the server-side session contract. A session is an opaque
// token bound to at most one user id, plus a queue of one-shot flash
// messages consumed by the next rendered page.
type Store interface {
	// Create issues a new anonymous session and returns its token.
	Create(ctx context.Context) (string, error)

	// SetUser binds a user id to the session (login / auto-login).
	SetUser(ctx context.Context, token string, userID int64) error

	// ClearUser detaches the user while keeping the session alive,
	// so flash messages set during logout still render.
	ClearUser(ctx context.Context, token string) error

	// UserID resolves a token. Returns 0 for an anonymous session
	// and ErrSessionNotFound for an unknown token.
	UserID(ctx context.Context, token string) (int64, error)

	// Destroy removes the session and its flashes.
	Destroy(ctx context.Context, token string) error

	// AddFlash appends a one-shot notice to the session.
	AddFlash(ctx context.Context, token, message string) error

	// PopFlashes returns and clears all pending notices.
	PopFlashes(ctx context.Context, token string) ([]string, error)

	// Ping reports backend availability, used by /healthz.
	Ping(ctx context.Context) error
}
