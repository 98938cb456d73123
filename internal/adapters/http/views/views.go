// Package views renders the server-side HTML pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/dto"
)

//go:embed templates/*.html static/*.css
var assetsFS embed.FS

// Page template names.
const (
	PageLists    = "lists.html"
	PageNewList  = "new_list.html"
	PageList     = "list.html"
	PageEditList = "edit_list.html"
	PageNotFound = "not_found.html"
	PageError    = "error.html"
)

var pages = []string{PageLists, PageNewList, PageList, PageEditList, PageNotFound, PageError}

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Layout carries the fields every page shares.
type Layout struct {
	Title string
	Flash *Flash
}

// ListsView is the index of all lists.
type ListsView struct {
	Layout
	Lists []dto.ListSummary
}

// ListView shows one list with its todos and the new-todo form.
type ListView struct {
	Layout
	List      dto.ListResponse
	TodoTitle string
	Errors    map[string]string
}

// ListFormView backs both the new-list and the edit-list forms. ListID is
// zero for a new list.
type ListFormView struct {
	Layout
	ListID int64
	Value  string
	Errors map[string]string
}

// MessageView backs the not-found and error pages.
type MessageView struct {
	Layout
	Message string
}

// Renderer executes page templates. Each page is parsed together with the
// layout so every page can define its own "content" block.
type Renderer struct {
	pages  map[string]*template.Template
	static fs.FS
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"trim":   strings.TrimSpace,
		"plural": plural,
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.New(page).Funcs(funcs).ParseFS(assetsFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		r.pages[page] = t
	}

	static, err := fs.Sub(assetsFS, "static")
	if err != nil {
		return nil, fmt.Errorf("opening static assets: %w", err)
	}
	r.static = static

	return r, nil
}

// Render writes page with the given status. The page is rendered into a
// buffer first so a template error never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded stylesheet. Mount it under /static/ with the
// prefix stripped.
func (r *Renderer) Static() http.Handler {
	return http.FileServerFS(r.static)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
