package todolist

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todo"
)

// sortable is satisfied by both *List and *todo.Todo.
type sortable interface {
	IsDone() bool
	Title() string
}

// byDoneThenTitle returns a sorted copy of items: not-done entries first,
// then done entries, each group ordered by case-insensitive title. Equal
// titles keep their original relative order.
func byDoneThenTitle[T sortable](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	slices.SortStableFunc(out, func(a, b T) int {
		if a.IsDone() != b.IsDone() {
			if a.IsDone() {
				return 1
			}
			return -1
		}
		return cmp.Compare(strings.ToLower(a.Title()), strings.ToLower(b.Title()))
	})
	return out
}

// SortLists returns lists ordered for display: unfinished lists first, then
// finished ones, each group sorted by case-insensitive title. The input slice
// is not modified.
func SortLists(lists []*List) []*List {
	return byDoneThenTitle(lists)
}

// SortTodos returns the todos of l ordered the same way SortLists orders
// lists. The list itself is not reordered.
func SortTodos(l *List) []*todo.Todo {
	return byDoneThenTitle(l.todos)
}

// FindList returns the first list in lists with the given id, or nil.
func FindList(id int64, lists []*List) *List {
	for _, l := range lists {
		if l.id == id {
			return l
		}
	}
	return nil
}
