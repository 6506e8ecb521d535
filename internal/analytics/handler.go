package analytics

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/odyssey-admin/internal/i18n"
	"github.com/odyssey-erp/odyssey-admin/internal/prefs"
	"github.com/odyssey-erp/odyssey-admin/internal/view"
)

// Handler serves the analytics overview.
type Handler struct {
	logger   *slog.Logger
	inputs   func(*http.Request) Inputs
	renderer *view.Renderer
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, inputs func(*http.Request) Inputs, renderer *view.Renderer) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, inputs: inputs, renderer: renderer}
}

// MountRoutes registers analytics routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.showDashboard)
}

func (h *Handler) showDashboard(w http.ResponseWriter, r *http.Request) {
	lang := prefs.Language(r.Context())
	dashboard, err := Build(h.inputs(r), i18n.T(lang, "analytics.traffic"), i18n.T(lang, "analytics.revenue"))
	if err != nil {
		h.logger.Error("build dashboard", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.renderer.Page(w, r, http.StatusOK, "analytics.html", "analytics.title", dashboard)
}
