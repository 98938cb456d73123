// Package seedfile provides a SeedSource that reads starter lists from a
// YAML or JSON file. The file is parsed on every call so edits take effect
// for the next new session without a restart.
package seedfile

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Compile-time interface check.
var _ ports.SeedSource = (*Source)(nil)

// listsKey is the top-level key holding the seed lists.
const listsKey = "lists"

// Source reads seeds from a file on disk.
type Source struct {
	path string
}

// New creates a Source for path. The parser is chosen by extension: ".json"
// uses JSON, anything else YAML.
func New(path string) *Source {
	return &Source{path: path}
}

// Seeds implements ports.SeedSource.
func (s *Source) Seeds(_ context.Context) ([]todolist.Seed, error) {
	var parser koanf.Parser = yaml.Parser()
	if strings.EqualFold(filepath.Ext(s.path), ".json") {
		parser = json.Parser()
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(s.path), parser); err != nil {
		return nil, fmt.Errorf("loading seed file %s: %w", s.path, err)
	}

	var seeds []todolist.Seed
	if err := k.UnmarshalWithConf(listsKey, &seeds, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", s.path, err)
	}

	return cleanSeeds(seeds), nil
}

// cleanSeeds trims titles and drops lists and todos whose title would not
// pass title validation.
func cleanSeeds(seeds []todolist.Seed) []todolist.Seed {
	out := seeds[:0]
	for _, sd := range seeds {
		title, ok := domain.CleanTitle(sd.Title)
		if !ok {
			continue
		}
		todos := sd.Todos[:0]
		for _, st := range sd.Todos {
			if st.Title, ok = domain.CleanTitle(st.Title); ok {
				todos = append(todos, st)
			}
		}
		out = append(out, todolist.Seed{Title: title, Todos: todos})
	}
	return out
}
