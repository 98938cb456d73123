// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/todolist"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-lists/internal/ports"
)

// Compile-time check that ListService implements ports.ListService.
var _ ports.ListService = (*ListService)(nil)

var errNoSession = errors.New("missing session id")

// ListService implements ports.ListService on top of a SessionStore. Each
// call loads the session's collection, applies one mutation and saves it back,
// holding that session's lock for the whole cycle so concurrent requests from
// one browser never interleave. Callers receive detached copies.
type ListService struct {
	store   ports.SessionStore
	seeds   ports.SeedSource
	locks   *sessionLocks
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewListService creates a ListService. seeds may be nil, in which case new
// sessions start empty. metrics may be nil to skip instrumentation.
func NewListService(
	store ports.SessionStore,
	seeds ports.SeedSource,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *ListService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ListService{
		store:   store,
		seeds:   seeds,
		locks:   newSessionLocks(),
		metrics: metrics,
		logger:  logger,
	}
}

// ListLists returns every list of the session in collection order.
func (s *ListService) ListLists(ctx context.Context, sessionID string) ([]*todolist.List, error) {
	s.logger.DebugContext(ctx, "listing todo lists")

	var out []*todolist.List
	err := s.withCollection(ctx, sessionID, "ListLists", false, func(c *todolist.Collection) error {
		lists := c.Lists()
		out = make([]*todolist.List, len(lists))
		for i, l := range lists {
			out[i] = l.Clone()
		}
		return nil
	})
	return out, err
}

// CreateList adds a new list, rejecting titles already used in the session.
func (s *ListService) CreateList(ctx context.Context, sessionID, title string) (*todolist.List, error) {
	s.logger.InfoContext(ctx, "creating todo list", slog.String("title", title))

	var out *todolist.List
	err := s.withCollection(ctx, sessionID, "CreateList", true, func(c *todolist.Collection) error {
		if c.HasTitle(title, 0) {
			return domain.NewValidationError("title", domain.MsgListTitleUnique)
		}
		out = c.NewList(title).Clone()
		return nil
	})
	return out, err
}

// GetList returns one list with its todos.
func (s *ListService) GetList(ctx context.Context, sessionID string, listID int64) (*todolist.List, error) {
	s.logger.DebugContext(ctx, "fetching todo list", slog.Int64("list_id", listID))

	var out *todolist.List
	err := s.withCollection(ctx, sessionID, "GetList", false, func(c *todolist.Collection) error {
		l, err := findList(c, listID)
		if err != nil {
			return err
		}
		out = l.Clone()
		return nil
	})
	return out, err
}

// RenameList retitles a list. The uniqueness check ignores the list itself so
// saving an unchanged title succeeds.
func (s *ListService) RenameList(ctx context.Context, sessionID string, listID int64, title string) (*todolist.List, error) {
	s.logger.InfoContext(ctx, "renaming todo list",
		slog.Int64("list_id", listID),
		slog.String("title", title),
	)

	var out *todolist.List
	err := s.withCollection(ctx, sessionID, "RenameList", true, func(c *todolist.Collection) error {
		l, err := findList(c, listID)
		if err != nil {
			return err
		}
		if c.HasTitle(title, listID) {
			return domain.NewValidationError("title", domain.MsgListTitleUnique)
		}
		l.SetTitle(title)
		out = l.Clone()
		return nil
	})
	return out, err
}

// DeleteList removes a list and everything in it.
func (s *ListService) DeleteList(ctx context.Context, sessionID string, listID int64) error {
	s.logger.InfoContext(ctx, "deleting todo list", slog.Int64("list_id", listID))

	return s.withCollection(ctx, sessionID, "DeleteList", true, func(c *todolist.Collection) error {
		if !c.Remove(listID) {
			return listNotFound(listID)
		}
		return nil
	})
}

// AddTodo appends a new todo to a list.
func (s *ListService) AddTodo(ctx context.Context, sessionID string, listID int64, title string) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "adding todo",
		slog.Int64("list_id", listID),
		slog.String("title", title),
	)

	var out *todo.Todo
	err := s.withCollection(ctx, sessionID, "AddTodo", true, func(c *todolist.Collection) error {
		l, err := findList(c, listID)
		if err != nil {
			return err
		}
		t, err := c.NewTodo(l, title)
		if err != nil {
			return err
		}
		out = t.Clone()
		return nil
	})
	return out, err
}

// ToggleTodo flips the done flag of one todo.
func (s *ListService) ToggleTodo(ctx context.Context, sessionID string, listID, todoID int64) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "toggling todo",
		slog.Int64("list_id", listID),
		slog.Int64("todo_id", todoID),
	)

	var out *todo.Todo
	err := s.withCollection(ctx, sessionID, "ToggleTodo", true, func(c *todolist.Collection) error {
		t, err := findTodo(c, listID, todoID)
		if err != nil {
			return err
		}
		t.Toggle()
		out = t.Clone()
		return nil
	})
	return out, err
}

// RemoveTodo deletes one todo from a list.
func (s *ListService) RemoveTodo(ctx context.Context, sessionID string, listID, todoID int64) error {
	s.logger.InfoContext(ctx, "removing todo",
		slog.Int64("list_id", listID),
		slog.Int64("todo_id", todoID),
	)

	return s.withCollection(ctx, sessionID, "RemoveTodo", true, func(c *todolist.Collection) error {
		l, err := findList(c, listID)
		if err != nil {
			return err
		}
		if _, ok := l.Remove(todoID); !ok {
			return todoNotFound(listID, todoID)
		}
		return nil
	})
}

// CompleteAll marks every todo of a list done.
func (s *ListService) CompleteAll(ctx context.Context, sessionID string, listID int64) (*todolist.List, error) {
	s.logger.InfoContext(ctx, "completing all todos", slog.Int64("list_id", listID))

	var out *todolist.List
	err := s.withCollection(ctx, sessionID, "CompleteAll", true, func(c *todolist.Collection) error {
		l, err := findList(c, listID)
		if err != nil {
			return err
		}
		l.MarkAllDone()
		out = l.Clone()
		return nil
	})
	return out, err
}

// withCollection runs fn against the session's collection while holding the
// session lock. The collection is saved when write is set or when the
// session was created by this call; otherwise only its expiry is extended.
// A failing fn leaves the stored data untouched.
func (s *ListService) withCollection(
	ctx context.Context,
	sessionID, operation string,
	write bool,
	fn func(*todolist.Collection) error,
) (err error) {
	defer func() { s.recordOperation(ctx, operation, err) }()

	if sessionID == "" {
		return fmt.Errorf("%s: %w", operation, errNoSession)
	}

	unlock := s.locks.lock(sessionID)
	defer unlock()

	c, created, err := s.load(ctx, sessionID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load session",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
		return err
	}

	fnErr := fn(c)
	if !created && (fnErr != nil || !write) {
		s.touch(ctx, sessionID, operation)
		return fnErr
	}

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		s.logger.ErrorContext(ctx, "failed to save session",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
		return fmt.Errorf("saving session: %w", err)
	}
	return fnErr
}

// touch keeps a session alive across requests that change nothing. A
// failure is logged only; the request itself already succeeded or failed.
func (s *ListService) touch(ctx context.Context, sessionID, operation string) {
	if err := s.store.Touch(ctx, sessionID); err != nil {
		s.logger.WarnContext(ctx, "failed to extend session expiry",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
}

// load fetches the stored collection, or builds a fresh one when the session
// is new or its stored data is corrupt.
func (s *ListService) load(ctx context.Context, sessionID string) (*todolist.Collection, bool, error) {
	c, err := s.store.Load(ctx, sessionID)
	switch {
	case err == nil:
		return c, false, nil
	case errors.Is(err, domain.ErrMalformed):
		s.logger.WarnContext(ctx, "discarding malformed session", slog.Any("error", err))
	case !errors.Is(err, domain.ErrNotFound):
		return nil, false, fmt.Errorf("loading session: %w", err)
	}
	return s.newCollection(ctx), true, nil
}

// newCollection builds the collection for a brand-new session, planting the
// configured seeds. Seed failures are logged and yield an empty collection.
func (s *ListService) newCollection(ctx context.Context) *todolist.Collection {
	c := todolist.NewCollection()
	if s.seeds == nil {
		s.recordSessionStart(ctx, "empty")
		return c
	}

	seeds, err := s.seeds.Seeds(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "seed source failed, starting empty session",
			slog.String("operation", "newCollection"),
			slog.Any("error", err),
		)
		s.recordSessionStart(ctx, "seed_failed")
		return c
	}

	n := c.Plant(seeds)
	s.logger.DebugContext(ctx, "planted seed lists", slog.Int("lists", n))
	s.recordSessionStart(ctx, "seeded")
	return c
}

// recordSessionStart counts a new session by where its lists came from.
func (s *ListService) recordSessionStart(ctx context.Context, source string) {
	if s.metrics != nil {
		s.metrics.SessionsStarted.Add(ctx, 1, metric.WithAttributes(telemetry.AttrSource.String(source)))
	}
}

// recordOperation counts one service call by outcome. Nil-safe.
func (s *ListService) recordOperation(ctx context.Context, operation string, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case errors.Is(err, domain.ErrValidation):
		result = "invalid"
	default:
		result = "error"
	}

	s.metrics.TodoOperationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(result),
	))
}

func findList(c *todolist.Collection, listID int64) (*todolist.List, error) {
	l := c.Find(listID)
	if l == nil {
		return nil, listNotFound(listID)
	}
	return l, nil
}

func findTodo(c *todolist.Collection, listID, todoID int64) (*todo.Todo, error) {
	l, err := findList(c, listID)
	if err != nil {
		return nil, err
	}
	t := l.FindByID(todoID)
	if t == nil {
		return nil, todoNotFound(listID, todoID)
	}
	return t, nil
}

func listNotFound(listID int64) error {
	return fmt.Errorf("todo list %d: %w", listID, domain.ErrNotFound)
}

func todoNotFound(listID, todoID int64) error {
	return fmt.Errorf("todo %d in list %d: %w", todoID, listID, domain.ErrNotFound)
}
