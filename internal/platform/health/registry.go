// Package health aggregates the readiness checks of the service's
// dependencies behind [ports.HealthRegistry].
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

const (
	// parallelism caps how many checks one CheckAll call runs at once.
	parallelism = 4

	// DefaultCheckTimeout bounds one check when no other timeout is set.
	DefaultCheckTimeout = 2 * time.Second
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds named checkers and fans each readiness request out across them.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]ports.HealthChecker
	order   []string
	timeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each check. Zero or negative disables the bound
// and leaves only the caller's deadline.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		byName:  make(map[string]ports.HealthChecker),
		timeout: DefaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker under its name, replacing any earlier checker with
// the same name.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byName[name]; !dup {
		r.order = append(r.order, name)
	}
	r.byName[name] = checker
}

// CheckAll runs every registered check and returns the outcome per name.
// A nil value means healthy. Checks are started even when ctx is already
// done so each checker reports its own cancellation.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, 0, len(r.order))
	for _, name := range r.order {
		checkers = append(checkers, r.byName[name])
	}
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string]error, len(checkers))
		g       errgroup.Group
	)
	g.SetLimit(parallelism)

	for _, c := range checkers {
		g.Go(func() error {
			err := r.check(ctx, c)
			mu.Lock()
			results[c.Name()] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// check runs one checker under the per-check timeout and turns a panic into
// a failing result.
func (r *Registry) check(ctx context.Context, c ports.HealthChecker) (err error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%s: health check panicked: %v", c.Name(), v)
		}
	}()

	return c.HealthCheck(ctx)
}
