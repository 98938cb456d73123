package todo

import (
	"strings"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
)

// Record is the plain attribute form of a Todo used for persistence.
// Done is a pointer so a missing flag can be told apart from false.
type Record struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  *bool  `json:"done"`
}

// Record returns the attribute form of t.
func (t *Todo) Record() Record {
	done := t.done
	return Record{ID: t.id, Title: t.title, Done: &done}
}

// FromRecord rebuilds a Todo from its attribute form. It fails with
// domain.ErrMalformed when a field is missing or invalid.
func FromRecord(rec Record) (*Todo, error) {
	switch {
	case rec.ID <= 0:
		return nil, &domain.MalformedError{Entity: "todo", Field: "id", Reason: "must be positive"}
	case strings.TrimSpace(rec.Title) == "":
		return nil, &domain.MalformedError{Entity: "todo", Field: "title", Reason: "is required"}
	case rec.Done == nil:
		return nil, &domain.MalformedError{Entity: "todo", Field: "done", Reason: "is required"}
	}
	return &Todo{id: rec.ID, title: rec.Title, done: *rec.Done}, nil
}
