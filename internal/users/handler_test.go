package users_test

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/odyssey-admin/internal/shared"
	"github.com/odyssey-erp/odyssey-admin/internal/toast"
	"github.com/odyssey-erp/odyssey-admin/internal/users"
	"github.com/odyssey-erp/odyssey-admin/internal/view"
)

type idleTimer struct{}

func (idleTimer) Stop() bool { return true }

func newUsersRouter(t *testing.T) (http.Handler, *users.Store, *toast.Queue) {
	t.Helper()
	engine, err := view.NewEngine()
	require.NoError(t, err)
	renderer := view.NewRenderer(engine, func(r *http.Request) view.Layout {
		return view.Layout{Lang: "en", Dir: "ltr", Theme: "modern", CurrentPath: r.URL.Path, User: &shared.Profile{ID: "1", Name: "Admin User"}}
	}, nil)

	st := users.NewStore(users.Seed(), func() time.Time { return time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC) })
	queue := toast.NewQueue(toast.WithScheduler(func(time.Duration, func()) toast.Timer { return idleTimer{} }))
	h := users.NewHandler(nil,
		func(*http.Request) *users.Store { return st },
		func(*http.Request) *toast.Queue { return queue },
		renderer, nil)

	router := chi.NewRouter()
	router.Route("/dashboard/users", h.MountRoutes)
	return router, st, queue
}

func postForm(router http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func get(router http.Handler, target string) *httptest.ResponseRecorder {
	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, target, nil))
	return res
}

func TestListAppliesParamsThenRedirects(t *testing.T) {
	router, st, _ := newUsersRouter(t)

	res := get(router, "/dashboard/users?search=sara&role=Manager")
	assert.Equal(t, http.StatusSeeOther, res.Code)
	assert.Equal(t, "/dashboard/users", res.Header().Get("Location"))
	assert.Equal(t, "sara", st.Query().Search)

	res = get(router, "/dashboard/users")
	require.Equal(t, http.StatusOK, res.Code)
	body := res.Body.String()
	assert.Contains(t, body, "Sara Mohamed")
	assert.NotContains(t, body, "Khaled Ibrahim")
}

func TestListShowsFirstPageAndStats(t *testing.T) {
	router, _, _ := newUsersRouter(t)

	res := get(router, "/dashboard/users")
	require.Equal(t, http.StatusOK, res.Code)
	body := res.Body.String()
	assert.Contains(t, body, "Ahmed Ali")
	assert.NotContains(t, body, "Mona Adel")
	assert.Contains(t, body, "Page 1 of 3")
}

func TestCreateUserAddsAndToasts(t *testing.T) {
	router, st, queue := newUsersRouter(t)

	res := postForm(router, "/dashboard/users", url.Values{
		"name": {"New Person"}, "email": {"new@example.com"}, "role": {"User"}, "status": {"Active"},
	})
	assert.Equal(t, http.StatusSeeOther, res.Code)

	added, ok := st.Get(13)
	require.True(t, ok)
	assert.Equal(t, "New Person", added.Name)
	assert.Equal(t, "2025-01-02", added.CreatedAt)

	toasts := queue.List()
	require.Len(t, toasts, 1)
	assert.Equal(t, "User added", toasts[0].Message)
	assert.Equal(t, toast.Success, toasts[0].Kind)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	router, st, _ := newUsersRouter(t)

	res := postForm(router, "/dashboard/users", url.Values{"name": {"x"}, "role": {"Root"}, "status": {"Active"}})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Len(t, st.All(), 12)
}

func TestUpdateAndDeleteUser(t *testing.T) {
	router, st, queue := newUsersRouter(t)

	res := postForm(router, "/dashboard/users/3", url.Values{
		"name": {"Omar H."}, "email": {"omar@example.com"}, "role": {"Manager"}, "status": {"Active"},
	})
	assert.Equal(t, http.StatusSeeOther, res.Code)
	u, ok := st.Get(3)
	require.True(t, ok)
	assert.Equal(t, "Omar H.", u.Name)
	assert.Equal(t, users.RoleManager, u.Role)

	res = postForm(router, "/dashboard/users/3/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, res.Code)
	_, ok = st.Get(3)
	assert.False(t, ok)
	assert.Len(t, queue.List(), 2)
}

func TestEditFormUnknownUserIsNotFound(t *testing.T) {
	router, _, _ := newUsersRouter(t)
	assert.Equal(t, http.StatusNotFound, get(router, "/dashboard/users/99/edit").Code)
	assert.Equal(t, http.StatusOK, get(router, "/dashboard/users/1/edit").Code)
}

func TestExportWritesFilteredRows(t *testing.T) {
	router, st, queue := newUsersRouter(t)
	st.SetRoleFilter("Admin")
	st.Edit(1, users.Patch{Name: ptr("Ali, Ahmed")})

	res := get(router, "/dashboard/users/export.csv")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "text/csv; charset=utf-8", res.Header().Get("Content-Type"))
	assert.Contains(t, res.Header().Get("Content-Disposition"), "users.csv")

	records, err := csv.NewReader(res.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"id", "name", "email", "role", "status", "createdAt"}, records[0])
	assert.Equal(t, []string{"1", "Ali, Ahmed", "ahmed.ali@example.com", "Admin", "Active", "2024-01-12"}, records[1])
	assert.Equal(t, "8", records[2][0])

	require.Len(t, queue.List(), 1)
	assert.Equal(t, "Users exported to CSV", queue.List()[0].Message)
}

func ptr[T any](v T) *T { return &v }
