package seed

import (
	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
)

// ToDomainSeeds converts a catalogue response to domain seeds. Names and
// labels are trimmed; entries that would fail title validation (blank or
// longer than domain.MaxTitleLength) are dropped rather than failing the
// whole catalogue.
func ToDomainSeeds(dto CatalogueDTO) []todolist.Seed {
	seeds := make([]todolist.Seed, 0, len(dto.Lists))
	for _, l := range dto.Lists {
		name, ok := domain.CleanTitle(l.Name)
		if !ok {
			continue
		}
		seeds = append(seeds, todolist.Seed{Title: name, Todos: toDomainSeedTodos(l.Items)})
	}
	return seeds
}

func toDomainSeedTodos(items []ItemDTO) []todolist.SeedTodo {
	if len(items) == 0 {
		return nil
	}
	todos := make([]todolist.SeedTodo, 0, len(items))
	for _, it := range items {
		label, ok := domain.CleanTitle(it.Label)
		if !ok {
			continue
		}
		todos = append(todos, todolist.SeedTodo{Title: label, Done: it.Completed})
	}
	return todos
}
