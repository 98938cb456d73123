package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
)

func TestToDomainSeeds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dto  CatalogueDTO
		want []todolist.Seed
	}{
		{
			name: "empty catalogue",
			dto:  CatalogueDTO{},
			want: []todolist.Seed{},
		},
		{
			name: "maps names labels and completion",
			dto: CatalogueDTO{Lists: []ListDTO{{
				Name: " Groceries ",
				Items: []ItemDTO{
					{Label: "Milk"},
					{Label: "Eggs", Completed: true},
				},
			}}},
			want: []todolist.Seed{{
				Title: "Groceries",
				Todos: []todolist.SeedTodo{{Title: "Milk"}, {Title: "Eggs", Done: true}},
			}},
		},
		{
			name: "list without items",
			dto:  CatalogueDTO{Lists: []ListDTO{{Name: "Empty"}}},
			want: []todolist.Seed{{Title: "Empty"}},
		},
		{
			name: "drops blank and oversized titles",
			dto: CatalogueDTO{Lists: []ListDTO{
				{Name: "   "},
				{Name: strings.Repeat("x", 101)},
				{Name: "Kept", Items: []ItemDTO{{Label: ""}, {Label: strings.Repeat("é", 100)}}},
			}},
			want: []todolist.Seed{{
				Title: "Kept",
				Todos: []todolist.SeedTodo{{Title: strings.Repeat("é", 100)}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToDomainSeeds(tt.dto))
		})
	}
}
