package prefs

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/odyssey-admin/internal/i18n"
	"github.com/odyssey-erp/odyssey-admin/internal/platform/httpx"
	"github.com/odyssey-erp/odyssey-admin/internal/toast"
	"github.com/odyssey-erp/odyssey-admin/internal/view"
)

const settingsPath = "/dashboard/settings"

// Handler serves the settings page and the top bar toggles.
type Handler struct {
	logger   *slog.Logger
	toasts   toast.Locator
	renderer *view.Renderer
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, toasts toast.Locator, renderer *view.Renderer) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, toasts: toasts, renderer: renderer}
}

// MountSettings registers the settings page routes.
func (h *Handler) MountSettings(r chi.Router) {
	r.Get("/", h.showSettings)
	r.Post("/", h.saveSettings)
}

// MountToggles registers the top bar toggle routes.
func (h *Handler) MountToggles(r chi.Router) {
	r.Post("/mode", h.toggle(func(st *Store) { st.ToggleMode() }))
	r.Post("/language", h.toggle(func(st *Store) { st.ToggleLanguage() }))
	r.Post("/sidebar", h.toggle(func(st *Store) { st.ToggleSidebar() }))
}

type settingsPageData struct {
	Prefs     Preferences
	Languages []string
	Themes    []string
	Error     string
}

func (h *Handler) showSettings(w http.ResponseWriter, r *http.Request) {
	h.renderSettings(w, r, http.StatusOK, "")
}

func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	st := FromContext(r.Context())
	err := st.Apply(r.PostFormValue("language"), r.PostFormValue("theme"))
	lang := st.Get().Language
	if err != nil {
		h.logger.Warn("reject preference", slog.Any("error", err))
		h.renderSettings(w, r, http.StatusBadRequest, i18n.T(lang, "settings.invalid"))
		return
	}
	if q := h.toasts(r); q != nil {
		q.Show(toast.Success, i18n.T(lang, "settings.saved"))
	}
	http.Redirect(w, r, settingsPath, http.StatusSeeOther)
}

func (h *Handler) toggle(apply func(*Store)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		apply(FromContext(r.Context()))
		http.Redirect(w, r, httpx.SafeReturn(r.PostFormValue("return"), "/dashboard/analytics"), http.StatusSeeOther)
	}
}

func (h *Handler) renderSettings(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	h.renderer.Page(w, r, status, "settings.html", "settings.title", settingsPageData{
		Prefs:     FromContext(r.Context()).Get(),
		Languages: []string{i18n.English, i18n.Arabic},
		Themes:    Themes,
		Error:     errMsg,
	})
}

