package notifications

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/odyssey-admin/internal/i18n"
	"github.com/odyssey-erp/odyssey-admin/internal/platform/httpx"
	"github.com/odyssey-erp/odyssey-admin/internal/prefs"
	"github.com/odyssey-erp/odyssey-admin/internal/toast"
	"github.com/odyssey-erp/odyssey-admin/internal/view"
)

const basePath = "/dashboard/notifications"

// Handler serves the inbox.
type Handler struct {
	logger   *slog.Logger
	stores   func(*http.Request) *Store
	toasts   toast.Locator
	renderer *view.Renderer
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, stores func(*http.Request) *Store, toasts toast.Locator, renderer *view.Renderer) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, stores: stores, toasts: toasts, renderer: renderer}
}

// MountRoutes registers notification routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listNotifications)
	r.Post("/read-all", h.markAllRead)
	r.Post("/{id}/read", h.markRead)
}

type listPageData struct {
	Items   []Notification
	Filters []string
	Active  string
	Unread  int
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	st := h.stores(r)
	if httpx.ApplyListParams(r, httpx.ListParams{"filter": st.SetFilter}) {
		http.Redirect(w, r, basePath, http.StatusSeeOther)
		return
	}
	h.renderer.Page(w, r, http.StatusOK, "notifications.html", "notifications.title", listPageData{
		Items:   st.View(),
		Filters: Filters,
		Active:  st.Filter(),
		Unread:  st.Unread(),
	})
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.stores(r).MarkRead(id)
	http.Redirect(w, r, basePath, http.StatusSeeOther)
}

func (h *Handler) markAllRead(w http.ResponseWriter, r *http.Request) {
	h.stores(r).MarkAllRead()
	if q := h.toasts(r); q != nil {
		q.Show(toast.Success, i18n.T(prefs.Language(r.Context()), "notifications.marked_all"))
	}
	http.Redirect(w, r, basePath, http.StatusSeeOther)
}
