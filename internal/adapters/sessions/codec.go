package sessions

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
)

var errNilCollection = errors.New("nil collection")

// encode serializes a collection to its stored form.
func encode(c *todolist.Collection) ([]byte, error) {
	if c == nil {
		return nil, errNilCollection
	}
	data, err := json.Marshal(c.Record())
	if err != nil {
		return nil, fmt.Errorf("encoding session: %w", err)
	}
	return data, nil
}

// decode rebuilds a collection from its stored form. Any failure wraps
// domain.ErrMalformed.
func decode(data []byte) (*todolist.Collection, error) {
	var rec todolist.CollectionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding session: %w: %w", domain.ErrMalformed, err)
	}
	c, err := todolist.CollectionFromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return c, nil
}

// Option configures a session store.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for expiry. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
