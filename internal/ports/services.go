package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
)

// ListService defines the service port for session-scoped to-do list
// operations. Implemented by the application layer; called by inbound
// adapters (HTML pages, JSON API). Every method operates on the collection
// owned by sessionID, and returned entities are detached copies.
type ListService interface {
	// ListLists returns every list in the session, in collection order.
	ListLists(ctx context.Context, sessionID string) ([]*todolist.List, error)

	// CreateList adds a list with the given (already trimmed and validated)
	// title. Returns domain.ErrValidation if the title is already in use.
	CreateList(ctx context.Context, sessionID, title string) (*todolist.List, error)

	// GetList returns one list with its todos.
	// Returns domain.ErrNotFound if the list does not exist.
	GetList(ctx context.Context, sessionID string, listID int64) (*todolist.List, error)

	// RenameList changes a list's title.
	// Returns domain.ErrNotFound if the list does not exist and
	// domain.ErrValidation if another list already has the title.
	RenameList(ctx context.Context, sessionID string, listID int64, title string) (*todolist.List, error)

	// DeleteList removes a list and its todos.
	// Returns domain.ErrNotFound if the list does not exist.
	DeleteList(ctx context.Context, sessionID string, listID int64) error

	// AddTodo appends a todo to a list.
	// Returns domain.ErrNotFound if the list does not exist.
	AddTodo(ctx context.Context, sessionID string, listID int64, title string) (*todo.Todo, error)

	// ToggleTodo flips a todo's done flag and returns the updated todo.
	// Returns domain.ErrNotFound if the list or todo does not exist.
	ToggleTodo(ctx context.Context, sessionID string, listID, todoID int64) (*todo.Todo, error)

	// RemoveTodo deletes a todo from a list.
	// Returns domain.ErrNotFound if the list or todo does not exist.
	RemoveTodo(ctx context.Context, sessionID string, listID, todoID int64) error

	// CompleteAll marks every todo in a list done.
	// Returns domain.ErrNotFound if the list does not exist.
	CompleteAll(ctx context.Context, sessionID string, listID int64) (*todolist.List, error)
}
