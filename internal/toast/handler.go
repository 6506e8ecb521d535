package toast

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/odyssey-admin/internal/platform/httpx"
	"github.com/odyssey-erp/odyssey-admin/internal/shared"
)

const fallbackReturn = "/dashboard/analytics"

// Handler exposes the live queue for polling.
type Handler struct {
	queues Locator
}

// NewHandler builds Handler instance.
func NewHandler(queues Locator) *Handler {
	return &Handler{queues: queues}
}

// MountRoutes registers toast routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/{id}/dismiss", h.dismiss)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := h.queues(r)
	if q == nil {
		httpx.RespondError(w, shared.ErrNotFound)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"toasts": q.List()})
}

func (h *Handler) dismiss(w http.ResponseWriter, r *http.Request) {
	q := h.queues(r)
	if q == nil {
		httpx.RespondError(w, shared.ErrNotFound)
		return
	}
	q.Remove(chi.URLParam(r, "id"))
	// Script requests carry the CSRF header and only need the status; plain
	// form posts go back to the page they came from.
	if r.Header.Get(shared.CSRFHeader) != "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, httpx.SafeReturn(r.PostFormValue("return"), fallbackReturn), http.StatusSeeOther)
}
