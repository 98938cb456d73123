package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// modernc.org/sqlite registers the pure-Go "sqlite" driver.
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.SessionStore  = (*SQLite)(nil)
	_ ports.HealthChecker = (*SQLite)(nil)
)

var sqlitePragmas = []string{
	"PRAGMA journal_mode=WAL;",
	"PRAGMA synchronous=NORMAL;",
	"PRAGMA busy_timeout=5000;",
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		lists INTEGER NOT NULL,
		updated_at_unixms INTEGER NOT NULL,
		expires_at_unixms INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS sessions_expires_at ON sessions(expires_at_unixms);`,
}

// SQLite is a SessionStore backed by a SQLite database file.
type SQLite struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path and applies the
// schema. The caller must Close the store.
func OpenSQLite(ctx context.Context, path string, ttl time.Duration, opts ...Option) (*SQLite, error) {
	o := buildOptions(opts)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating session database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening session database: %w", err)
	}
	// One connection serializes writers and keeps pragmas in effect.
	db.SetMaxOpenConns(1)

	for _, p := range sqlitePragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("applying %q: %w", p, err)
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db, ttl: ttl, now: o.now}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrating session database: %w", err)
		}
	}
	return nil
}

// Load implements ports.SessionStore.
func (s *SQLite) Load(ctx context.Context, sessionID string) (*todolist.Collection, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM sessions WHERE id = ? AND expires_at_unixms > ?`,
		sessionID, s.now().UnixMilli(),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return decode([]byte(data))
}

// Save implements ports.SessionStore.
func (s *SQLite) Save(ctx context.Context, sessionID string, c *todolist.Collection) error {
	data, err := encode(c)
	if err != nil {
		return err
	}

	now := s.now()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, data, lists, updated_at_unixms, expires_at_unixms)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			data = excluded.data,
			lists = excluded.lists,
			updated_at_unixms = excluded.updated_at_unixms,
			expires_at_unixms = excluded.expires_at_unixms`,
		sessionID, string(data), c.Len(), now.UnixMilli(), now.Add(s.ttl).UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Touch implements ports.SessionStore.
func (s *SQLite) Touch(ctx context.Context, sessionID string) error {
	now := s.now()
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET expires_at_unixms = ? WHERE id = ? AND expires_at_unixms > ?`,
		now.Add(s.ttl).UnixMilli(), sessionID, now.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("touching session: %w", err)
	}
	return nil
}

// Delete implements ports.SessionStore.
func (s *SQLite) Delete(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// DeleteExpired implements ports.SessionStore.
func (s *SQLite) DeleteExpired(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at_unixms <= ?`, s.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("deleting expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting expired sessions: %w", err)
	}
	return int(n), nil
}

// List implements ports.SessionStore.
func (s *SQLite) List(ctx context.Context) ([]ports.SessionInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, lists, updated_at_unixms, expires_at_unixms
		FROM sessions
		WHERE expires_at_unixms > ?
		ORDER BY updated_at_unixms DESC, id ASC`,
		s.now().UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []ports.SessionInfo
	for rows.Next() {
		var (
			info               ports.SessionInfo
			updated, expiresAt int64
		)
		if err := rows.Scan(&info.ID, &info.Lists, &updated, &expiresAt); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		info.UpdatedAt = time.UnixMilli(updated)
		info.ExpiresAt = time.UnixMilli(expiresAt)
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return out, nil
}

// Name implements ports.HealthChecker.
func (s *SQLite) Name() string {
	return "session-store"
}

// HealthCheck implements ports.HealthChecker by pinging the database.
func (s *SQLite) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("session-store: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
