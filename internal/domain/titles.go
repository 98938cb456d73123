package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxTitleLength is the longest list or todo title accepted, in characters.
const MaxTitleLength = 100

// User-facing validation messages for list and todo titles.
const (
	MsgListTitleRequired = "The list title is required."
	MsgListTitleLength   = "List title must be between 1 and 100 characters."
	MsgListTitleUnique   = "List title must be unique."
	MsgTodoTitleRequired = "The todo title is required."
	MsgTodoTitleLength   = "Todo title must be between 1 and 100 characters."
)

// CleanTitle trims s and reports whether the result is a usable title:
// between 1 and MaxTitleLength characters.
func CleanTitle(s string) (string, bool) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	return s, n > 0 && n <= MaxTitleLength
}
