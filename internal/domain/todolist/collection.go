package todolist

import (
	"fmt"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todo"
)

// Collection is the ordered set of lists belonging to one session, together
// with the id sequence its lists and todos draw from.
//
// A Collection is not safe for concurrent use; callers serialize access per
// session.
type Collection struct {
	ids   *domain.Sequence
	lists []*List
}

// NewCollection returns an empty Collection with a fresh id sequence.
func NewCollection() *Collection {
	return &Collection{ids: domain.NewSequence(0)}
}

// IDs returns the allocator shared by the collection's lists and todos.
func (c *Collection) IDs() domain.IDAllocator { return c.ids }

// LastID returns the highest id issued so far.
func (c *Collection) LastID() int64 { return c.ids.Last() }

// Len returns the number of lists.
func (c *Collection) Len() int { return len(c.lists) }

// Lists returns a snapshot of the lists in collection order.
func (c *Collection) Lists() []*List {
	out := make([]*List, len(c.lists))
	copy(out, c.lists)
	return out
}

// NewList creates a list with a fresh id, appends it and returns it.
func (c *Collection) NewList(title string) *List {
	l := New(c.ids, title)
	c.lists = append(c.lists, l)
	return l
}

// NewTodo creates a todo with a fresh id and appends it to l.
func (c *Collection) NewTodo(l *List, title string) (*todo.Todo, error) {
	t := todo.New(c.ids, title)
	if err := l.Add(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Add appends an existing list. Its id and the ids of its todos are observed
// so later allocations never collide with them.
func (c *Collection) Add(l *List) error {
	if l == nil {
		return fmt.Errorf("adding to collection: list is nil: %w", domain.ErrInvalidType)
	}
	c.ids.Observe(l.id)
	for _, t := range l.todos {
		c.ids.Observe(t.ID())
	}
	c.lists = append(c.lists, l)
	return nil
}

// Find returns the list with the given id, or nil.
func (c *Collection) Find(id int64) *List {
	return FindList(id, c.lists)
}

// Remove deletes the list with the given id and reports whether it existed.
func (c *Collection) Remove(id int64) bool {
	for i, l := range c.lists {
		if l.id == id {
			c.lists = append(c.lists[:i:i], c.lists[i+1:]...)
			return true
		}
	}
	return false
}

// HasTitle reports whether any list other than the one with id except has
// exactly the given title. Pass 0 to check every list. The comparison is
// case-sensitive.
func (c *Collection) HasTitle(title string, except int64) bool {
	for _, l := range c.lists {
		if l.id != except && l.title == title {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the collection, including its id sequence.
func (c *Collection) Clone() *Collection {
	out := &Collection{ids: domain.NewSequence(c.ids.Last()), lists: make([]*List, len(c.lists))}
	for i, l := range c.lists {
		out.lists[i] = l.Clone()
	}
	return out
}
