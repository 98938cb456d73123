package sessions

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.SessionStore  = (*Memory)(nil)
	_ ports.HealthChecker = (*Memory)(nil)
)

// Memory is an in-process SessionStore. Collections are kept encoded so a
// loaded collection never aliases the stored one. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	lists     int
	updatedAt time.Time
	expiresAt time.Time
}

// NewMemory creates an empty in-memory store whose sessions expire ttl after
// their last save.
func NewMemory(ttl time.Duration, opts ...Option) *Memory {
	o := buildOptions(opts)
	return &Memory{
		ttl:     ttl,
		now:     o.now,
		entries: make(map[string]memoryEntry),
	}
}

// Load implements ports.SessionStore.
func (m *Memory) Load(_ context.Context, sessionID string) (*todolist.Collection, error) {
	m.mu.RLock()
	e, ok := m.entries[sessionID]
	m.mu.RUnlock()

	if !ok || !m.now().Before(e.expiresAt) {
		return nil, fmt.Errorf("session: %w", domain.ErrNotFound)
	}
	return decode(e.data)
}

// Save implements ports.SessionStore.
func (m *Memory) Save(_ context.Context, sessionID string, c *todolist.Collection) error {
	data, err := encode(c)
	if err != nil {
		return err
	}

	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[sessionID] = memoryEntry{
		data:      data,
		lists:     c.Len(),
		updatedAt: now,
		expiresAt: now.Add(m.ttl),
	}
	return nil
}

// Touch implements ports.SessionStore.
func (m *Memory) Touch(_ context.Context, sessionID string) error {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[sessionID]
	if !ok || !now.Before(e.expiresAt) {
		return nil
	}
	e.expiresAt = now.Add(m.ttl)
	m.entries[sessionID] = e
	return nil
}

// Delete implements ports.SessionStore.
func (m *Memory) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, sessionID)
	return nil
}

// DeleteExpired implements ports.SessionStore.
func (m *Memory) DeleteExpired(_ context.Context) (int, error) {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for id, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, id)
			n++
		}
	}
	return n, nil
}

// List implements ports.SessionStore.
func (m *Memory) List(_ context.Context) ([]ports.SessionInfo, error) {
	now := m.now()
	m.mu.RLock()
	out := make([]ports.SessionInfo, 0, len(m.entries))
	for id, e := range m.entries {
		if !now.Before(e.expiresAt) {
			continue
		}
		out = append(out, ports.SessionInfo{
			ID:        id,
			Lists:     e.lists,
			UpdatedAt: e.updatedAt,
			ExpiresAt: e.expiresAt,
		})
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b ports.SessionInfo) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// Name implements ports.HealthChecker.
func (m *Memory) Name() string {
	return "session-store"
}

// HealthCheck implements ports.HealthChecker. The map is always available.
func (m *Memory) HealthCheck(_ context.Context) error {
	return nil
}

// Close releases nothing. It lets Memory satisfy Store.
func (m *Memory) Close() error {
	return nil
}
