package products

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/odyssey-admin/internal/platform/httpx"
	"github.com/odyssey-erp/odyssey-admin/internal/query"
	"github.com/odyssey-erp/odyssey-admin/internal/view"
)

const basePath = "/dashboard/products"

// Handler serves the catalogue page.
type Handler struct {
	logger   *slog.Logger
	stores   func(*http.Request) *Store
	renderer *view.Renderer
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, stores func(*http.Request) *Store, renderer *view.Renderer) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, stores: stores, renderer: renderer}
}

// MountRoutes registers product routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listProducts)
}

type listPageData struct {
	Page       query.Result[Product]
	Query      query.State
	Stats      Stats
	Categories []string
	Search     string
	Category   string
	Stock      string
	View       string
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	st := h.stores(r)
	applied := httpx.ApplyListParams(r, httpx.ListParams{
		"search":   st.SetSearch,
		"category": st.SetCategoryFilter,
		"stock":    st.SetStockFilter,
		"sort":     st.SetSort,
		"view":     st.SetView,
		"page":     httpx.PageSetter(st.SetPage),
	})
	if applied {
		http.Redirect(w, r, basePath, http.StatusSeeOther)
		return
	}
	state := st.Query()
	h.renderer.Page(w, r, http.StatusOK, "products.html", "products.title", listPageData{
		Page:       st.View(),
		Query:      state,
		Stats:      st.Stats(),
		Categories: st.Categories(),
		Search:     state.Search,
		Category:   state.Filter(filterCategory),
		Stock:      state.Filter(filterStock),
		View:       st.ViewMode(),
	})
}
