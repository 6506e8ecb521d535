package view

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/odyssey-erp/odyssey-admin/internal/i18n"
	"github.com/odyssey-erp/odyssey-admin/internal/query"
	"github.com/odyssey-erp/odyssey-admin/internal/shared"
	"github.com/odyssey-erp/odyssey-admin/web"
)

// Engine renders HTML templates. Every page is parsed into its own set on
// top of the shared layouts and partials so pages can each define "content".
type Engine struct {
	pages map[string]*template.Template
}

// ToastView is a toast as rendered in the layout.
type ToastView struct {
	ID      string
	Kind    string
	Message string
}

// Layout carries everything the shell (sidebar, top bar, toasts) needs.
type Layout struct {
	CSRFToken        string
	CurrentPath      string
	User             *shared.Profile
	Lang             string
	Dir              string
	Theme            string
	ModeClass        string
	Dark             bool
	SidebarCollapsed bool
	Toasts           []ToastView
	Unread           int
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title  string
	Layout Layout
	Data   any
}

// NewEngine parses the embedded templates.
func NewEngine() (*Engine, error) {
	funcMap := template.FuncMap{
		"t":     i18n.T,
		"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		"sortMark": func(st query.State, field string) string {
			if st.SortField != field {
				return ""
			}
			if st.SortDir == query.Desc {
				return "▼"
			}
			return "▲"
		},
		"active": func(current, prefix string) bool {
			return current == prefix || strings.HasPrefix(current, prefix+"/")
		},
	}
	base, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates, "templates/layouts/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, err
	}
	files, err := fs.Glob(web.Templates, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		set, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := set.ParseFS(web.Templates, file); err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", file, err)
		}
		pages[path.Base(file)] = set
	}
	return &Engine{pages: pages}, nil
}

// Has reports whether a page template exists.
func (e *Engine) Has(name string) bool {
	_, ok := e.pages[name]
	return ok
}

// Render executes a page template with TemplateData.
func (e *Engine) Render(w http.ResponseWriter, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	set, ok := e.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return set.ExecuteTemplate(w, "base", data)
}
