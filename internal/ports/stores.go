package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
)

// SessionStore persists each session's collection between requests.
// Implemented by the session adapters (memory, SQLite).
type SessionStore interface {
	// Load returns the collection stored for sessionID.
	// Returns domain.ErrNotFound if nothing is stored or the session expired,
	// and domain.ErrMalformed if the stored data cannot be rebuilt.
	Load(ctx context.Context, sessionID string) (*todolist.Collection, error)

	// Save stores the collection and extends the session's expiry.
	Save(ctx context.Context, sessionID string, c *todolist.Collection) error

	// Touch extends a live session's expiry without rewriting its data.
	// Touching an unknown or expired session does nothing.
	Touch(ctx context.Context, sessionID string) error

	// Delete removes a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, sessionID string) error

	// DeleteExpired removes every expired session and returns how many.
	DeleteExpired(ctx context.Context) (int, error)

	// List describes the live sessions, most recently updated first.
	List(ctx context.Context) ([]SessionInfo, error)
}

// SessionInfo summarizes one stored session.
type SessionInfo struct {
	ID        string
	Lists     int
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// SeedSource supplies list templates planted into brand-new sessions.
// Implemented by the seed file adapter and the remote seed client.
type SeedSource interface {
	Seeds(ctx context.Context) ([]todolist.Seed, error)
}
