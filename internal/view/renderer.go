package view

import (
	"log/slog"
	"net/http"

	"github.com/odyssey-erp/odyssey-admin/internal/i18n"
)

// LayoutFunc builds the shell data for a request.
type LayoutFunc func(r *http.Request) Layout

// Renderer combines the engine with the per-request layout.
type Renderer struct {
	engine *Engine
	layout LayoutFunc
	logger *slog.Logger
}

// NewRenderer constructs a Renderer.
func NewRenderer(engine *Engine, layout LayoutFunc, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{engine: engine, layout: layout, logger: logger}
}

// Page renders name with status. titleKey is looked up in the string table.
func (rr *Renderer) Page(w http.ResponseWriter, r *http.Request, status int, name, titleKey string, data any) {
	// The layout may mint a CSRF token, so build it before headers go out.
	layout := rr.layout(r)
	w.WriteHeader(status)
	td := TemplateData{Title: i18n.T(layout.Lang, titleKey), Layout: layout, Data: data}
	if err := rr.engine.Render(w, name, td); err != nil {
		rr.logger.Error("render template", slog.String("page", name), slog.Any("error", err))
	}
}
