// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/handlers"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Pages  *handlers.PageHandler
	Lists  *handlers.ListHandler
	Health *handlers.HealthHandler

	// Static serves embedded assets under /static/.
	Static http.Handler

	// Session identifies the browser session for page and API routes. Health
	// and static routes run without it. Nil disables session handling.
	Session func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.NotFound(h.Pages.NotFound)

	if h.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", h.Static))
	}

	r.Group(func(r chi.Router) {
		if h.Session != nil {
			r.Use(h.Session)
		}

		// Server-rendered pages.
		r.Get("/", h.Pages.Home)
		r.Get("/lists", h.Pages.Lists)
		r.Post("/lists", h.Pages.CreateList)
		r.Get("/lists/new", h.Pages.NewList)
		r.Get("/lists/{listID}", h.Pages.ShowList)
		r.Post("/lists/{listID}", h.Pages.RenameList)
		r.Get("/lists/{listID}/edit", h.Pages.EditList)
		r.Post("/lists/{listID}/destroy", h.Pages.DeleteList)
		r.Post("/lists/{listID}/complete_all", h.Pages.CompleteAll)
		r.Post("/lists/{listID}/todos", h.Pages.AddTodo)
		r.Post("/lists/{listID}/todos/{todoID}/toggle", h.Pages.ToggleTodo)
		r.Post("/lists/{listID}/todos/{todoID}/destroy", h.Pages.DeleteTodo)

		// API v1 routes.
		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/lists", h.Lists.ListLists)
			r.Post("/lists", h.Lists.CreateList)
			r.Get("/lists/{listID}", h.Lists.GetList)
			r.Patch("/lists/{listID}", h.Lists.RenameList)
			r.Delete("/lists/{listID}", h.Lists.DeleteList)
			r.Get("/lists/{listID}/text", h.Lists.GetListText)
			r.Post("/lists/{listID}/complete_all", h.Lists.CompleteAll)

			// Nested list-todo operations.
			r.Post("/lists/{listID}/todos", h.Lists.AddTodo)
			r.Post("/lists/{listID}/todos/{todoID}/toggle", h.Lists.ToggleTodo)
			r.Delete("/lists/{listID}/todos/{todoID}", h.Lists.RemoveTodo)
		})
	})

	return r
}
