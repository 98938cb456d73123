// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
)

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// ListSummary represents a todo list without its todos.
type ListSummary struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Done      bool   `json:"done"`
	Size      int    `json:"size"`
	Remaining int    `json:"remaining"`
}

// ListResponse represents a todo list with its todos, not-done first.
type ListResponse struct {
	ListSummary
	Todos []TodoResponse `json:"todos"`
}

// ListCollectionResponse represents every list of a session.
type ListCollectionResponse struct {
	Lists []ListSummary `json:"lists"`
	Count int           `json:"count"`
}

// ToTodoResponse converts a domain Todo to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:    t.ID(),
		Title: t.Title(),
		Done:  t.IsDone(),
	}
}

// ToListSummary converts a domain List to a summary DTO.
func ToListSummary(l *todolist.List) ListSummary {
	return ListSummary{
		ID:        l.ID(),
		Title:     l.Title(),
		Done:      l.IsDone(),
		Size:      l.Size(),
		Remaining: l.AllNotDone().Size(),
	}
}

// ToListResponse converts a domain List to a response DTO with its todos in
// display order.
func ToListResponse(l *todolist.List) ListResponse {
	sorted := todolist.SortTodos(l)
	todos := make([]TodoResponse, len(sorted))
	for i, t := range sorted {
		todos[i] = ToTodoResponse(t)
	}
	return ListResponse{
		ListSummary: ToListSummary(l),
		Todos:       todos,
	}
}

// ToListCollectionResponse converts a session's lists to a response DTO in
// display order: lists with work left first, each group by title.
func ToListCollectionResponse(lists []*todolist.List) ListCollectionResponse {
	sorted := todolist.SortLists(lists)
	items := make([]ListSummary, len(sorted))
	for i, l := range sorted {
		items[i] = ToListSummary(l)
	}
	return ListCollectionResponse{
		Lists: items,
		Count: len(items),
	}
}
