package todolist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todo"
)

// Record is the plain attribute form of a List used for persistence.
type Record struct {
	ID    int64         `json:"id"`
	Title string        `json:"title"`
	Todos []todo.Record `json:"todos"`
}

// CollectionRecord is the plain attribute form of a Collection. LastID keeps
// the id high-water mark so deleted ids are never reissued after a reload.
type CollectionRecord struct {
	LastID int64    `json:"last_id"`
	Lists  []Record `json:"lists"`
}

// Record returns the attribute form of l, todos in order.
func (l *List) Record() Record {
	rec := Record{ID: l.id, Title: l.title, Todos: make([]todo.Record, len(l.todos))}
	for i, t := range l.todos {
		rec.Todos[i] = t.Record()
	}
	return rec
}

// FromRecord rebuilds a List from its attribute form, preserving ids, titles,
// done flags and order. It fails with domain.ErrMalformed on missing or
// invalid fields.
func FromRecord(rec Record) (*List, error) {
	switch {
	case rec.ID <= 0:
		return nil, &domain.MalformedError{Entity: "list", Field: "id", Reason: "must be positive"}
	case strings.TrimSpace(rec.Title) == "":
		return nil, &domain.MalformedError{Entity: "list", Field: "title", Reason: "is required"}
	case rec.Todos == nil:
		return nil, &domain.MalformedError{Entity: "list", Field: "todos", Reason: "is required"}
	}

	l := &List{id: rec.ID, title: rec.Title, todos: make([]*todo.Todo, 0, len(rec.Todos))}
	for i, tr := range rec.Todos {
		t, err := todo.FromRecord(tr)
		if err != nil {
			return nil, fmt.Errorf("list %d todo %d: %w", rec.ID, i, err)
		}
		l.todos = append(l.todos, t)
	}
	return l, nil
}

// Record returns the attribute form of c.
func (c *Collection) Record() CollectionRecord {
	rec := CollectionRecord{LastID: c.ids.Last(), Lists: make([]Record, len(c.lists))}
	for i, l := range c.lists {
		rec.Lists[i] = l.Record()
	}
	return rec
}

// CollectionFromRecord rebuilds a Collection. Besides the per-entity checks
// of FromRecord it rejects ids shared by two entities, and it raises the id
// sequence past every restored id even if LastID is stale.
func CollectionFromRecord(rec CollectionRecord) (*Collection, error) {
	if rec.LastID < 0 {
		return nil, &domain.MalformedError{Entity: "collection", Field: "last_id", Reason: "must not be negative"}
	}
	if rec.Lists == nil {
		return nil, &domain.MalformedError{Entity: "collection", Field: "lists", Reason: "is required"}
	}

	c := &Collection{ids: domain.NewSequence(rec.LastID), lists: make([]*List, 0, len(rec.Lists))}
	seen := make(map[int64]bool)
	claim := func(id int64) error {
		if seen[id] {
			return &domain.MalformedError{Entity: "collection", Field: "id", Reason: fmt.Sprintf("%d is used twice", id)}
		}
		seen[id] = true
		return nil
	}

	var errs []error
	for _, lr := range rec.Lists {
		l, err := FromRecord(lr)
		if err != nil {
			return nil, err
		}
		errs = append(errs, claim(l.id))
		for _, t := range l.todos {
			errs = append(errs, claim(t.ID()))
		}
		if err := c.Add(l); err != nil {
			return nil, err
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}
