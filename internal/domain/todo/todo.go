// Package todo holds the todo item entity.
package todo

import "github.com/jsamuelsen11/go-todo-lists/internal/domain"

const (
	doneMarker   = "X"
	undoneMarker = " "
)

// Todo is a single to-do entry. The id is assigned at construction and never
// changes; title and done state are mutable.
//
// Todo performs no validation. Titles are checked at the boundary before
// they reach the entity.
type Todo struct {
	id    int64
	title string
	done  bool
}

// New creates a not-done Todo with a fresh id from ids.
func New(ids domain.IDAllocator, title string) *Todo {
	return &Todo{id: ids.NextID(), title: title}
}

// ID returns the todo's id.
func (t *Todo) ID() int64 { return t.id }

// Title returns the todo's title.
func (t *Todo) Title() string { return t.title }

// SetTitle replaces the todo's title.
func (t *Todo) SetTitle(title string) { t.title = title }

// IsDone reports whether the todo is marked done.
func (t *Todo) IsDone() bool { return t.done }

// MarkDone marks the todo done. Idempotent.
func (t *Todo) MarkDone() { t.done = true }

// MarkUndone clears the done flag. Idempotent.
func (t *Todo) MarkUndone() { t.done = false }

// Toggle flips the done flag and returns the new state.
func (t *Todo) Toggle() bool {
	t.done = !t.done
	return t.done
}

// SameAs reports whether t and other are the same entity, i.e. share an id.
func (t *Todo) SameAs(other *Todo) bool {
	return t != nil && other != nil && t.id == other.id
}

// Clone returns an independent copy of the todo.
func (t *Todo) Clone() *Todo {
	c := *t
	return &c
}

// String renders the todo as "[X] title" or "[ ] title".
func (t *Todo) String() string {
	marker := undoneMarker
	if t.done {
		marker = doneMarker
	}
	return "[" + marker + "] " + t.title
}
