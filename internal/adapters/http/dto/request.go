package dto

import (
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
)

// titleField is the request field every title-bearing request validates.
const titleField = "title"

// CreateListRequest represents the body for creating a new todo list.
type CreateListRequest struct {
	Title string `json:"title"`
}

// Validate trims the title and checks it is present and within length.
// Returns a *domain.ValidationError if any checks fail. Uniqueness needs the
// session's lists and is checked by the service.
func (r *CreateListRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return validateTitle(r.Title, domain.MsgListTitleRequired, domain.MsgListTitleLength)
}

// RenameListRequest represents the body for renaming a todo list.
type RenameListRequest struct {
	Title string `json:"title"`
}

// Validate applies the same rules as CreateListRequest.
func (r *RenameListRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return validateTitle(r.Title, domain.MsgListTitleRequired, domain.MsgListTitleLength)
}

// CreateTodoRequest represents the body for adding a todo to a list.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// Validate trims the title and checks it is present and within length.
func (r *CreateTodoRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return validateTitle(r.Title, domain.MsgTodoTitleRequired, domain.MsgTodoTitleLength)
}

// validateTitle expects an already trimmed title. Length counts characters,
// not bytes.
func validateTitle(title, requiredMsg, lengthMsg string) error {
	n := utf8.RuneCountInString(title)
	switch {
	case n == 0:
		return domain.NewValidationError(titleField, requiredMsg)
	case n > domain.MaxTitleLength:
		return domain.NewValidationError(titleField, lengthMsg)
	default:
		return nil
	}
}
