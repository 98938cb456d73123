// Package todolist holds the List entity, the per-session Collection of lists,
// and the sort and query helpers used when presenting them.
package todolist

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todo"
)

// List is a titled, ordered sequence of todos. Insertion order is display
// order. A List exclusively owns its todos, except for lists returned by
// Filter, which share todo pointers with their source.
type List struct {
	id    int64
	title string
	todos []*todo.Todo
}

// New creates an empty List with a fresh id from ids.
func New(ids domain.IDAllocator, title string) *List {
	return &List{id: ids.NextID(), title: title}
}

// ID returns the list's id.
func (l *List) ID() int64 { return l.id }

// Title returns the list's title.
func (l *List) Title() string { return l.title }

// SetTitle replaces the list's title. Uniqueness is enforced by callers.
func (l *List) SetTitle(title string) { l.title = title }

// Add appends t to the end of the list.
func (l *List) Add(t *todo.Todo) error {
	if t == nil {
		return fmt.Errorf("adding to list %d: todo is nil: %w", l.id, domain.ErrInvalidType)
	}
	l.todos = append(l.todos, t)
	return nil
}

// Size returns the number of todos.
func (l *List) Size() int { return len(l.todos) }

// First returns the first todo, or nil if the list is empty.
func (l *List) First() *todo.Todo {
	if len(l.todos) == 0 {
		return nil
	}
	return l.todos[0]
}

// Last returns the last todo, or nil if the list is empty.
func (l *List) Last() *todo.Todo {
	if len(l.todos) == 0 {
		return nil
	}
	return l.todos[len(l.todos)-1]
}

func (l *List) checkIndex(index int) error {
	if index < 0 || index >= len(l.todos) {
		return fmt.Errorf("invalid index %d for list of size %d: %w", index, len(l.todos), domain.ErrOutOfRange)
	}
	return nil
}

// ItemAt returns the todo at index.
func (l *List) ItemAt(index int) (*todo.Todo, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	return l.todos[index], nil
}

// MarkDoneAt marks the todo at index done.
func (l *List) MarkDoneAt(index int) error {
	t, err := l.ItemAt(index)
	if err != nil {
		return err
	}
	t.MarkDone()
	return nil
}

// MarkUndoneAt marks the todo at index not done.
func (l *List) MarkUndoneAt(index int) error {
	t, err := l.ItemAt(index)
	if err != nil {
		return err
	}
	t.MarkUndone()
	return nil
}

// RemoveAt removes and returns the todo at index. Later todos shift down
// one position.
func (l *List) RemoveAt(index int) (*todo.Todo, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	t := l.todos[index]
	l.todos = append(l.todos[:index:index], l.todos[index+1:]...)
	return t, nil
}

// Shift removes and returns the first todo, or nil if the list is empty.
func (l *List) Shift() *todo.Todo {
	if len(l.todos) == 0 {
		return nil
	}
	t := l.todos[0]
	l.todos = l.todos[1:]
	return t
}

// Pop removes and returns the last todo, or nil if the list is empty.
func (l *List) Pop() *todo.Todo {
	if len(l.todos) == 0 {
		return nil
	}
	last := len(l.todos) - 1
	t := l.todos[last]
	l.todos = l.todos[:last]
	return t
}

// IsDone reports whether the list is non-empty and every todo is done.
func (l *List) IsDone() bool {
	if len(l.todos) == 0 {
		return false
	}
	for _, t := range l.todos {
		if !t.IsDone() {
			return false
		}
	}
	return true
}

// ForEach calls fn for every todo in order.
func (l *List) ForEach(fn func(*todo.Todo)) {
	for _, t := range l.todos {
		fn(t)
	}
}

// Filter returns a new List with the same id and title holding, in order,
// the todos for which keep returns true. The todos themselves are shared:
// mutating one through the filtered list mutates the source.
func (l *List) Filter(keep func(*todo.Todo) bool) *List {
	out := &List{id: l.id, title: l.title}
	for _, t := range l.todos {
		if keep(t) {
			out.todos = append(out.todos, t)
		}
	}
	return out
}

// FindByTitle returns the last todo whose title equals title exactly, or nil.
func (l *List) FindByTitle(title string) *todo.Todo {
	var found *todo.Todo
	for _, t := range l.todos {
		if t.Title() == title {
			found = t
		}
	}
	return found
}

// FindByID returns the todo with the given id, or nil.
func (l *List) FindByID(id int64) *todo.Todo {
	for _, t := range l.todos {
		if t.ID() == id {
			return t
		}
	}
	return nil
}

// FindIndexOf returns the position of the todo sharing t's id, or -1.
func (l *List) FindIndexOf(t *todo.Todo) int {
	if t == nil {
		return -1
	}
	for i, cur := range l.todos {
		if cur.SameAs(t) {
			return i
		}
	}
	return -1
}

// AllDone returns a view of the done todos. The view keeps this list's id
// and shares its todos; see Filter.
func (l *List) AllDone() *List {
	return l.Filter((*todo.Todo).IsDone)
}

// AllNotDone returns a view of the todos not yet done, sharing this list's
// id and todos.
func (l *List) AllNotDone() *List {
	return l.Filter(func(t *todo.Todo) bool { return !t.IsDone() })
}

// AllTodos returns a view holding every todo, sharing this list's id and
// todos. Use Clone for an independent copy.
func (l *List) AllTodos() *List {
	return l.Filter(func(*todo.Todo) bool { return true })
}

// MarkDone marks the todo found by FindByTitle done. No-op when absent.
func (l *List) MarkDone(title string) {
	if t := l.FindByTitle(title); t != nil {
		t.MarkDone()
	}
}

// MarkAllDone marks every todo done.
func (l *List) MarkAllDone() {
	l.ForEach((*todo.Todo).MarkDone)
}

// MarkAllUndone marks every todo not done.
func (l *List) MarkAllUndone() {
	l.ForEach((*todo.Todo).MarkUndone)
}

// Todos returns a snapshot of the list's todos in order. The slice is a copy;
// the todos are not.
func (l *List) Todos() []*todo.Todo {
	out := make([]*todo.Todo, len(l.todos))
	copy(out, l.todos)
	return out
}

// Remove deletes the todo with the given id and reports whether it was found.
func (l *List) Remove(id int64) (*todo.Todo, bool) {
	idx := l.FindIndexOf(l.FindByID(id))
	if idx < 0 {
		return nil, false
	}
	t, _ := l.RemoveAt(idx)
	return t, true
}

// Clone returns a deep copy: the new list owns independent todo copies.
func (l *List) Clone() *List {
	out := &List{id: l.id, title: l.title, todos: make([]*todo.Todo, len(l.todos))}
	for i, t := range l.todos {
		out.todos[i] = t.Clone()
	}
	return out
}

// String renders a "-- title --" header followed by one line per todo.
func (l *List) String() string {
	var b strings.Builder
	b.WriteString("-- " + l.title + " --")
	for _, t := range l.todos {
		b.WriteByte('\n')
		b.WriteString(t.String())
	}
	return b.String()
}
