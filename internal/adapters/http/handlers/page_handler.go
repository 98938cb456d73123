package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/views"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Flash messages shown after successful form submissions.
const (
	flashListCreated  = "The todo list has been created."
	flashListUpdated  = "Todo list updated."
	flashListDeleted  = "Todo list deleted."
	flashTodoCreated  = "The todo has been created."
	flashTodoDeleted  = "The todo has been deleted."
	flashAllCompleted = "All todos have been marked as done."
)

const (
	msgNotFound      = "The specified list or todo was not found."
	msgInternal      = "Something went wrong while handling your request. Please try again."
	msgTimeout       = "The request took too long. Please try again."
	msgBadForm       = "The submitted form could not be read."
	maxFormBodyBytes = 64 << 10
)

// PageHandler serves the server-rendered HTML interface. Every mutating form
// posts, then redirects back to a page that shows the outcome as a flash.
type PageHandler struct {
	svc   ports.ListService
	views *views.Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(svc ports.ListService, renderer *views.Renderer) *PageHandler {
	return &PageHandler{svc: svc, views: renderer}
}

// Home handles GET / by redirecting to the list index.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/lists", http.StatusFound)
}

// Lists handles GET /lists.
func (h *PageHandler) Lists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context(), sessionID(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, views.PageLists, views.ListsView{
		Layout: views.Layout{Title: "All Lists", Flash: popFlash(w, r)},
		Lists:  dto.ToListCollectionResponse(lists).Lists,
	})
}

// NewList handles GET /lists/new.
func (h *PageHandler) NewList(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageNewList, views.ListFormView{
		Layout: views.Layout{Title: "New List", Flash: popFlash(w, r)},
	})
}

// CreateList handles POST /lists.
func (h *PageHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	input := r.PostFormValue("title")

	req := dto.CreateListRequest{Title: input}
	err := req.Validate()
	if err == nil {
		_, err = h.svc.CreateList(r.Context(), sessionID(r), req.Title)
	}
	if fields, ok := validationFields(err); ok {
		h.render(w, r, http.StatusUnprocessableEntity, views.PageNewList, views.ListFormView{
			Layout: views.Layout{Title: "New List"},
			Value:  input,
			Errors: fields,
		})
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	setFlash(w, views.FlashSuccess, flashListCreated)
	http.Redirect(w, r, "/lists", http.StatusSeeOther)
}

// ShowList handles GET /lists/{listID}.
func (h *PageHandler) ShowList(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, paramListID)
	if !ok {
		return
	}

	l, err := h.svc.GetList(r.Context(), sessionID(r), listID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, views.PageList, views.ListView{
		Layout: views.Layout{Title: l.Title(), Flash: popFlash(w, r)},
		List:   dto.ToListResponse(l),
	})
}

// EditList handles GET /lists/{listID}/edit.
func (h *PageHandler) EditList(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, paramListID)
	if !ok {
		return
	}

	l, err := h.svc.GetList(r.Context(), sessionID(r), listID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, views.PageEditList, views.ListFormView{
		Layout: views.Layout{Title: "Edit " + l.Title(), Flash: popFlash(w, r)},
		ListID: l.ID(),
		Value:  l.Title(),
	})
}

// RenameList handles POST /lists/{listID}.
func (h *PageHandler) RenameList(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, paramListID)
	if !ok || !h.parseForm(w, r) {
		return
	}
	input := r.PostFormValue("title")

	req := dto.RenameListRequest{Title: input}
	err := req.Validate()
	if err == nil {
		_, err = h.svc.RenameList(r.Context(), sessionID(r), listID, req.Title)
	}
	if fields, ok := validationFields(err); ok {
		h.render(w, r, http.StatusUnprocessableEntity, views.PageEditList, views.ListFormView{
			Layout: views.Layout{Title: "Edit List"},
			ListID: listID,
			Value:  input,
			Errors: fields,
		})
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	setFlash(w, views.FlashSuccess, flashListUpdated)
	http.Redirect(w, r, listPath(listID), http.StatusSeeOther)
}

// DeleteList handles POST /lists/{listID}/destroy.
func (h *PageHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, paramListID)
	if !ok {
		return
	}

	if err := h.svc.DeleteList(r.Context(), sessionID(r), listID); err != nil {
		h.renderError(w, r, err)
		return
	}

	setFlash(w, views.FlashSuccess, flashListDeleted)
	http.Redirect(w, r, "/lists", http.StatusSeeOther)
}

// CompleteAll handles POST /lists/{listID}/complete_all.
func (h *PageHandler) CompleteAll(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, paramListID)
	if !ok {
		return
	}

	if _, err := h.svc.CompleteAll(r.Context(), sessionID(r), listID); err != nil {
		h.renderError(w, r, err)
		return
	}

	setFlash(w, views.FlashSuccess, flashAllCompleted)
	http.Redirect(w, r, listPath(listID), http.StatusSeeOther)
}

// AddTodo handles POST /lists/{listID}/todos. A rejected title re-renders
// the list page with the error and the submitted text.
func (h *PageHandler) AddTodo(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, paramListID)
	if !ok || !h.parseForm(w, r) {
		return
	}
	input := r.PostFormValue("title")

	req := dto.CreateTodoRequest{Title: input}
	err := req.Validate()
	if err == nil {
		_, err = h.svc.AddTodo(r.Context(), sessionID(r), listID, req.Title)
	}
	if fields, ok := validationFields(err); ok {
		l, getErr := h.svc.GetList(r.Context(), sessionID(r), listID)
		if getErr != nil {
			h.renderError(w, r, getErr)
			return
		}
		h.render(w, r, http.StatusUnprocessableEntity, views.PageList, views.ListView{
			Layout:    views.Layout{Title: l.Title()},
			List:      dto.ToListResponse(l),
			TodoTitle: input,
			Errors:    fields,
		})
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	setFlash(w, views.FlashSuccess, flashTodoCreated)
	http.Redirect(w, r, listPath(listID), http.StatusSeeOther)
}

// ToggleTodo handles POST /lists/{listID}/todos/{todoID}/toggle.
func (h *PageHandler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, paramListID)
	if !ok {
		return
	}
	todoID, ok := h.pathID(w, r, paramTodoID)
	if !ok {
		return
	}

	t, err := h.svc.ToggleTodo(r.Context(), sessionID(r), listID, todoID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	msg := fmt.Sprintf("\"%s\" marked as NOT done!", t.Title())
	if t.IsDone() {
		msg = fmt.Sprintf("\"%s\" marked done.", t.Title())
	}
	setFlash(w, views.FlashSuccess, msg)
	http.Redirect(w, r, listPath(listID), http.StatusSeeOther)
}

// DeleteTodo handles POST /lists/{listID}/todos/{todoID}/destroy.
func (h *PageHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	listID, ok := h.pathID(w, r, paramListID)
	if !ok {
		return
	}
	todoID, ok := h.pathID(w, r, paramTodoID)
	if !ok {
		return
	}

	if err := h.svc.RemoveTodo(r.Context(), sessionID(r), listID, todoID); err != nil {
		h.renderError(w, r, err)
		return
	}

	setFlash(w, views.FlashSuccess, flashTodoDeleted)
	http.Redirect(w, r, listPath(listID), http.StatusSeeOther)
}

// NotFound renders the HTML 404 page for unmatched routes.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderMessage(w, r, http.StatusNotFound, views.PageNotFound, msgNotFound)
}

// pathID parses a numeric path parameter. Anything else cannot name a list
// or todo, so the 404 page is rendered and false returned.
func (h *PageHandler) pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := parseID(r, param)
	if err != nil {
		h.NotFound(w, r)
		return 0, false
	}
	return id, true
}

// parseForm reads the url-encoded body. On failure it renders a 400 page.
func (h *PageHandler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.renderMessage(w, r, http.StatusBadRequest, views.PageError, msgBadForm)
		return false
	}
	return true
}

// apiPrefix marks requests answered with problem JSON instead of pages.
const apiPrefix = "/api/"

// Failure writes the response for a request that failed outside its handler,
// such as a recovered panic or an expired deadline. API requests get problem
// JSON; everything else gets the HTML error page.
func (h *PageHandler) Failure(w http.ResponseWriter, r *http.Request, err error) {
	if strings.HasPrefix(r.URL.Path, apiPrefix) {
		dto.WriteProblem(w, r, err)
		return
	}
	h.renderError(w, r, err)
}

// renderError maps a service error to the not-found or generic error page.
func (h *PageHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := dto.StatusOf(err)
	if status == http.StatusNotFound {
		h.NotFound(w, r)
		return
	}

	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "page request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	msg := msgInternal
	if status == http.StatusGatewayTimeout {
		msg = msgTimeout
	}
	h.renderMessage(w, r, status, views.PageError, msg)
}

func (h *PageHandler) renderMessage(w http.ResponseWriter, r *http.Request, status int, page, msg string) {
	h.render(w, r, status, page, views.MessageView{
		Layout:  views.Layout{Title: http.StatusText(status)},
		Message: msg,
	})
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := h.views.Render(w, status, page, data); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render page",
			slog.String("page", page),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// validationFields returns the field messages of a validation failure.
func validationFields(err error) (map[string]string, bool) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields, true
	}
	return nil, false
}

func listPath(id int64) string {
	return "/lists/" + strconv.FormatInt(id, 10)
}
