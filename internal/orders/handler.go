package orders

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/odyssey-admin/internal/i18n"
	"github.com/odyssey-erp/odyssey-admin/internal/observability"
	"github.com/odyssey-erp/odyssey-admin/internal/platform/httpx"
	"github.com/odyssey-erp/odyssey-admin/internal/prefs"
	"github.com/odyssey-erp/odyssey-admin/internal/query"
	"github.com/odyssey-erp/odyssey-admin/internal/toast"
	"github.com/odyssey-erp/odyssey-admin/internal/view"
)

const basePath = "/dashboard/orders"

// Handler serves the orders list, detail and export.
type Handler struct {
	logger   *slog.Logger
	stores   func(*http.Request) *Store
	toasts   toast.Locator
	renderer *view.Renderer
	metrics  *observability.Metrics
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, stores func(*http.Request) *Store, toasts toast.Locator, renderer *view.Renderer, metrics *observability.Metrics) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, stores: stores, toasts: toasts, renderer: renderer, metrics: metrics}
}

// MountRoutes registers order routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listOrders)
	r.Get("/export.csv", h.exportCSV)
	r.Get("/{orderID}", h.showOrder)
}

type listPageData struct {
	Page     query.Result[Order]
	Query    query.State
	Stats    Stats
	Statuses []Status
	Search   string
	Status   string
}

type detailPageData struct {
	Order Order
	Found bool
	ID    string
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	st := h.stores(r)
	applied := httpx.ApplyListParams(r, httpx.ListParams{
		"search": st.SetSearch,
		"status": st.SetStatusFilter,
		"sort":   st.SetSort,
		"page":   httpx.PageSetter(st.SetPage),
	})
	if applied {
		http.Redirect(w, r, basePath, http.StatusSeeOther)
		return
	}
	state := st.Query()
	h.renderer.Page(w, r, http.StatusOK, "orders.html", "orders.title", listPageData{
		Page:     st.View(),
		Query:    state,
		Stats:    st.Stats(),
		Statuses: Statuses,
		Search:   state.Search,
		Status:   state.Filter(filterStatus),
	})
}

func (h *Handler) showOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderID")
	order, ok := h.stores(r).Get(id)
	if !ok {
		h.renderer.Page(w, r, http.StatusNotFound, "order_detail.html", "order.not_found", detailPageData{ID: id})
		return
	}
	h.renderer.Page(w, r, http.StatusOK, "order_detail.html", "order.title", detailPageData{Order: order, Found: true, ID: id})
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	rows := h.stores(r).Filtered()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	if err := WriteCSV(w, rows); err != nil {
		h.logger.Error("export orders", slog.Any("error", err))
		return
	}
	h.metrics.Exported("orders")
	if q := h.toasts(r); q != nil {
		q.Show(toast.Success, i18n.T(prefs.Language(r.Context()), "orders.exported"))
	}
}
