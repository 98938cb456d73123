package sessions

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/go-todo-lists/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Store is a session store that also reports health and owns resources that
// must be released on shutdown.
type Store interface {
	ports.SessionStore
	ports.HealthChecker
	Close() error
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*SQLite)(nil)
)

// Open builds the store selected by cfg.Store.
func Open(ctx context.Context, cfg config.SessionConfig, opts ...Option) (Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return NewMemory(cfg.TTL, opts...), nil
	case config.StoreSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath, cfg.TTL, opts...)
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}
