package users

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/odyssey-admin/internal/i18n"
	"github.com/odyssey-erp/odyssey-admin/internal/observability"
	"github.com/odyssey-erp/odyssey-admin/internal/platform/httpx"
	"github.com/odyssey-erp/odyssey-admin/internal/prefs"
	"github.com/odyssey-erp/odyssey-admin/internal/query"
	"github.com/odyssey-erp/odyssey-admin/internal/toast"
	"github.com/odyssey-erp/odyssey-admin/internal/view"
)

const basePath = "/dashboard/users"

// Handler serves the user management pages.
type Handler struct {
	logger    *slog.Logger
	stores    func(*http.Request) *Store
	toasts    toast.Locator
	renderer  *view.Renderer
	metrics   *observability.Metrics
	validator *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, stores func(*http.Request) *Store, toasts toast.Locator, renderer *view.Renderer, metrics *observability.Metrics) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, stores: stores, toasts: toasts, renderer: renderer, metrics: metrics, validator: validator.New()}
}

// MountRoutes registers user routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listUsers)
	r.Get("/new", h.showCreateForm)
	r.Post("/", h.createUser)
	r.Get("/export.csv", h.exportCSV)
	r.Get("/{id}/edit", h.showEditForm)
	r.Post("/{id}", h.updateUser)
	r.Post("/{id}/delete", h.deleteUser)
}

type listPageData struct {
	Page     query.Result[User]
	Query    query.State
	Stats    Stats
	Roles    []Role
	Statuses []Status
	Search   string
	Role     string
	Status   string
}

type userForm struct {
	Name   string
	Email  string
	Role   string `validate:"oneof=Admin Manager User"`
	Status string `validate:"oneof=Active Suspended"`
}

type formPageData struct {
	Action   string
	Editing  bool
	Form     userForm
	Errors   map[string]string
	Roles    []Role
	Statuses []Status
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	st := h.stores(r)
	applied := httpx.ApplyListParams(r, httpx.ListParams{
		"search": st.SetSearch,
		"role":   st.SetRoleFilter,
		"status": st.SetStatusFilter,
		"sort":   st.SetSort,
		"page":   httpx.PageSetter(st.SetPage),
	})
	if applied {
		http.Redirect(w, r, basePath, http.StatusSeeOther)
		return
	}
	state := st.Query()
	h.renderer.Page(w, r, http.StatusOK, "users.html", "users.title", listPageData{
		Page:     st.View(),
		Query:    state,
		Stats:    st.Stats(),
		Roles:    Roles,
		Statuses: Statuses,
		Search:   state.Search,
		Role:     state.Filter(filterRole),
		Status:   state.Filter(filterStatus),
	})
}

func (h *Handler) showCreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, formPageData{
		Action: basePath,
		Form:   userForm{Role: string(RoleUser), Status: string(StatusActive)},
	})
}

func (h *Handler) showEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	u, found := h.stores(r).Get(id)
	if !found {
		http.NotFound(w, r)
		return
	}
	h.renderForm(w, r, http.StatusOK, formPageData{
		Action:  basePath + "/" + chi.URLParam(r, "id"),
		Editing: true,
		Form:    userForm{Name: u.Name, Email: u.Email, Role: string(u.Role), Status: string(u.Status)},
	})
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	form, errs, ok := h.parseForm(w, r)
	if !ok {
		return
	}
	if len(errs) > 0 {
		h.renderForm(w, r, http.StatusBadRequest, formPageData{Action: basePath, Form: form, Errors: errs})
		return
	}
	added := h.stores(r).Add(User{
		Name:   form.Name,
		Email:  form.Email,
		Role:   Role(form.Role),
		Status: Status(form.Status),
	})
	h.logger.Info("user added", slog.Int64("id", added.ID))
	h.toast(r, toast.Success, "users.added")
	http.Redirect(w, r, basePath, http.StatusSeeOther)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, ok := ParseID(raw)
	if !ok {
		http.NotFound(w, r)
		return
	}
	form, errs, ok := h.parseForm(w, r)
	if !ok {
		return
	}
	if len(errs) > 0 {
		h.renderForm(w, r, http.StatusBadRequest, formPageData{Action: basePath + "/" + raw, Editing: true, Form: form, Errors: errs})
		return
	}
	role := Role(form.Role)
	status := Status(form.Status)
	h.stores(r).Edit(id, Patch{Name: &form.Name, Email: &form.Email, Role: &role, Status: &status})
	h.toast(r, toast.Success, "users.updated")
	http.Redirect(w, r, basePath, http.StatusSeeOther)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.stores(r).Delete(id)
	h.toast(r, toast.Success, "users.deleted")
	http.Redirect(w, r, basePath, http.StatusSeeOther)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	rows := h.stores(r).Filtered()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	if err := WriteCSV(w, rows); err != nil {
		h.logger.Error("export users", slog.Any("error", err))
		return
	}
	h.metrics.Exported("users")
	h.toast(r, toast.Success, "users.exported")
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) (userForm, map[string]string, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return userForm{}, nil, false
	}
	form := userForm{
		Name:   strings.TrimSpace(r.PostFormValue("name")),
		Email:  strings.TrimSpace(r.PostFormValue("email")),
		Role:   r.PostFormValue("role"),
		Status: r.PostFormValue("status"),
	}
	errs := make(map[string]string)
	if err := h.validator.Struct(form); err != nil {
		lang := prefs.Language(r.Context())
		for _, fieldErr := range err.(validator.ValidationErrors) {
			errs[fieldErr.Field()] = i18n.T(lang, "settings.invalid")
		}
	}
	return form, errs, true
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, data formPageData) {
	data.Roles = Roles
	data.Statuses = Statuses
	title := "users.add"
	if data.Editing {
		title = "users.edit"
	}
	h.renderer.Page(w, r, status, "user_form.html", title, data)
}

func (h *Handler) toast(r *http.Request, kind toast.Kind, key string) {
	q := h.toasts(r)
	if q == nil {
		return
	}
	q.Show(kind, i18n.T(prefs.Language(r.Context()), key))
}
