package handlers

import (
	"io"
	"net/http"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// URL parameter names shared by the JSON and HTML routes.
const (
	paramListID = "listID"
	paramTodoID = "todoID"
)

// ListHandler handles the JSON API over a session's todo lists.
type ListHandler struct {
	svc ports.ListService
}

// NewListHandler creates a new ListHandler with the given service port.
func NewListHandler(svc ports.ListService) *ListHandler {
	return &ListHandler{svc: svc}
}

// ListLists handles GET /api/v1/lists.
func (h *ListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context(), sessionID(r))
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListCollectionResponse(lists))
}

// CreateList handles POST /api/v1/lists.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.svc.CreateList(r.Context(), sessionID(r), req.Title)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToListResponse(l))
}

// GetList handles GET /api/v1/lists/{listID}.
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, paramListID)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	l, err := h.svc.GetList(r.Context(), sessionID(r), listID)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(l))
}

// GetListText handles GET /api/v1/lists/{listID}/text. The body is the
// list's plain-text rendering in insertion order.
func (h *ListHandler) GetListText(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, paramListID)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	l, err := h.svc.GetList(r.Context(), sessionID(r), listID)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, l.String()+"\n")
}

// RenameList handles PATCH /api/v1/lists/{listID}.
func (h *ListHandler) RenameList(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, paramListID)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	var req dto.RenameListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.svc.RenameList(r.Context(), sessionID(r), listID, req.Title)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(l))
}

// DeleteList handles DELETE /api/v1/lists/{listID}.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, paramListID)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	if err := h.svc.DeleteList(r.Context(), sessionID(r), listID); err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompleteAll handles POST /api/v1/lists/{listID}/complete_all.
func (h *ListHandler) CompleteAll(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, paramListID)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	l, err := h.svc.CompleteAll(r.Context(), sessionID(r), listID)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(l))
}

// AddTodo handles POST /api/v1/lists/{listID}/todos.
func (h *ListHandler) AddTodo(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, paramListID)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.svc.AddTodo(r.Context(), sessionID(r), listID, req.Title)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTodoResponse(t))
}

// ToggleTodo handles POST /api/v1/lists/{listID}/todos/{todoID}/toggle.
func (h *ListHandler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	listID, todoID, ok := parseTodoPath(w, r)
	if !ok {
		return
	}

	t, err := h.svc.ToggleTodo(r.Context(), sessionID(r), listID, todoID)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(t))
}

// RemoveTodo handles DELETE /api/v1/lists/{listID}/todos/{todoID}.
func (h *ListHandler) RemoveTodo(w http.ResponseWriter, r *http.Request) {
	listID, todoID, ok := parseTodoPath(w, r)
	if !ok {
		return
	}

	if err := h.svc.RemoveTodo(r.Context(), sessionID(r), listID, todoID); err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseTodoPath extracts both ids of a nested todo route. On failure it
// writes a 400 error response and returns false.
func parseTodoPath(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	listID, err := parseID(r, paramListID)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return 0, 0, false
	}
	todoID, err := parseID(r, paramTodoID)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return 0, 0, false
	}
	return listID, todoID, true
}
