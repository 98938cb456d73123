package todolist_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
)

func TestListRecord_RoundTrip(t *testing.T) {
	t.Parallel()

	orig := newList(t, domain.NewSequence(0), "Groceries", "Milk", "Eggs", "Bread")
	orig.MarkDone("Eggs")

	got, err := todolist.FromRecord(orig.Record())
	require.NoError(t, err)

	assert.Equal(t, orig.ID(), got.ID())
	assert.Equal(t, orig.Title(), got.Title())
	require.Equal(t, orig.Size(), got.Size())
	for i, want := range orig.Todos() {
		have, err := got.ItemAt(i)
		require.NoError(t, err)
		assert.Equal(t, want.ID(), have.ID())
		assert.Equal(t, want.Title(), have.Title())
		assert.Equal(t, want.IsDone(), have.IsDone())
	}
}

func TestListRecord_JSONShape(t *testing.T) {
	t.Parallel()

	raw := `{"id":3,"title":"Home","todos":[{"id":4,"title":"Dishes","done":true}]}`

	var rec todolist.Record
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	l, err := todolist.FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, "-- Home --\n[X] Dishes", l.String())

	out, err := json.Marshal(l.Record())
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestFromRecord_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		wantField string
	}{
		{name: "missing id", raw: `{"title":"A","todos":[]}`, wantField: "id"},
		{name: "missing title", raw: `{"id":1,"todos":[]}`, wantField: "title"},
		{name: "missing todos", raw: `{"id":1,"title":"A"}`, wantField: "todos"},
		{name: "null todos", raw: `{"id":1,"title":"A","todos":null}`, wantField: "todos"},
		{name: "todo missing done", raw: `{"id":1,"title":"A","todos":[{"id":2,"title":"x"}]}`, wantField: "done"},
		{name: "todo missing title", raw: `{"id":1,"title":"A","todos":[{"id":2,"done":false}]}`, wantField: "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var rec todolist.Record
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &rec))

			l, err := todolist.FromRecord(rec)
			assert.Nil(t, l)
			require.ErrorIs(t, err, domain.ErrMalformed)

			var merr *domain.MalformedError
			require.True(t, errors.As(err, &merr))
			assert.Equal(t, tt.wantField, merr.Field)
		})
	}
}

func TestCollectionRecord_RoundTrip(t *testing.T) {
	t.Parallel()

	c := todolist.NewCollection()
	work := c.NewList("Work")
	_, err := c.NewTodo(work, "Report")
	require.NoError(t, err)
	gone, err := c.NewTodo(work, "Deleted later")
	require.NoError(t, err)
	c.NewList("Home")
	_, ok := work.Remove(gone.ID())
	require.True(t, ok)

	data, err := json.Marshal(c.Record())
	require.NoError(t, err)

	var rec todolist.CollectionRecord
	require.NoError(t, json.Unmarshal(data, &rec))
	got, err := todolist.CollectionFromRecord(rec)
	require.NoError(t, err)

	assert.Equal(t, listTitles(c.Lists()), listTitles(got.Lists()))
	assert.Equal(t, c.LastID(), got.LastID())

	next := got.NewList("After reload")
	assert.Greater(t, next.ID(), gone.ID(), "deleted ids are not reissued after reload")
}

func TestCollectionFromRecord_StaleLastID(t *testing.T) {
	t.Parallel()

	done := false
	rec := todolist.CollectionRecord{
		LastID: 1,
		Lists: []todolist.Record{
			{ID: 7, Title: "A", Todos: []todo.Record{{ID: 9, Title: "x", Done: &done}}},
		},
	}

	c, err := todolist.CollectionFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, int64(10), c.NewList("B").ID())
}

func TestCollectionFromRecord_Malformed(t *testing.T) {
	t.Parallel()

	done := false
	tests := []struct {
		name string
		rec  todolist.CollectionRecord
	}{
		{name: "nil lists", rec: todolist.CollectionRecord{}},
		{name: "negative last id", rec: todolist.CollectionRecord{LastID: -1, Lists: []todolist.Record{}}},
		{
			name: "duplicate ids",
			rec: todolist.CollectionRecord{Lists: []todolist.Record{
				{ID: 1, Title: "A", Todos: []todo.Record{{ID: 1, Title: "x", Done: &done}}},
			}},
		},
		{
			name: "bad list",
			rec:  todolist.CollectionRecord{Lists: []todolist.Record{{ID: 1, Todos: []todo.Record{}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := todolist.CollectionFromRecord(tt.rec)
			assert.ErrorIs(t, err, domain.ErrMalformed)
		})
	}
}
