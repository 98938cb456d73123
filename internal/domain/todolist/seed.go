package todolist

import (
	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todo"
)

// Seed is a template for a list planted into a new session. Seeds carry no
// ids; planting allocates fresh ones.
type Seed struct {
	Title string     `json:"title" koanf:"title"`
	Todos []SeedTodo `json:"todos" koanf:"todos"`
}

// SeedTodo is a template for a todo inside a Seed.
type SeedTodo struct {
	Title string `json:"title" koanf:"title"`
	Done  bool   `json:"done"  koanf:"done"`
}

// Plant appends one list per seed, allocating fresh ids from the
// collection's sequence. Titles are trimmed, and lists or todos whose title
// is blank or too long are skipped, as are lists whose title already exists.
// It returns the number of lists planted.
func (c *Collection) Plant(seeds []Seed) int {
	planted := 0
	for _, s := range seeds {
		title, ok := domain.CleanTitle(s.Title)
		if !ok || c.HasTitle(title, 0) {
			continue
		}
		l := c.NewList(title)
		for _, st := range s.Todos {
			title, ok := domain.CleanTitle(st.Title)
			if !ok {
				continue
			}
			t := todo.New(c.ids, title)
			if st.Done {
				t.MarkDone()
			}
			l.todos = append(l.todos, t)
		}
		planted++
	}
	return planted
}
