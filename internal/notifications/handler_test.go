package notifications_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/odyssey-admin/internal/notifications"
	"github.com/odyssey-erp/odyssey-admin/internal/shared"
	"github.com/odyssey-erp/odyssey-admin/internal/toast"
	"github.com/odyssey-erp/odyssey-admin/internal/view"
)

type idleTimer struct{}

func (idleTimer) Stop() bool { return true }

func newInboxRouter(t *testing.T, lang string) (http.Handler, *notifications.Store, *toast.Queue) {
	t.Helper()
	engine, err := view.NewEngine()
	require.NoError(t, err)
	renderer := view.NewRenderer(engine, func(r *http.Request) view.Layout {
		return view.Layout{Lang: lang, CurrentPath: r.URL.Path, User: &shared.Profile{ID: "1", Name: "Admin User"}}
	}, nil)
	st := notifications.NewStore(notifications.Seed())
	queue := toast.NewQueue(toast.WithScheduler(func(time.Duration, func()) toast.Timer { return idleTimer{} }))
	h := notifications.NewHandler(nil,
		func(*http.Request) *notifications.Store { return st },
		func(*http.Request) *toast.Queue { return queue },
		renderer)
	router := chi.NewRouter()
	router.Route("/dashboard/notifications", h.MountRoutes)
	return router, st, queue
}

func do(router http.Handler, method, target string) *httptest.ResponseRecorder {
	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(method, target, nil))
	return res
}

func TestInboxRendersLocalisedTitles(t *testing.T) {
	router, _, _ := newInboxRouter(t, "ar")
	res := do(router, http.MethodGet, "/dashboard/notifications")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "تم استلام طلب جديد")
}

func TestFilterParamRedirects(t *testing.T) {
	router, st, _ := newInboxRouter(t, "en")
	res := do(router, http.MethodGet, "/dashboard/notifications?filter=orders")
	assert.Equal(t, http.StatusSeeOther, res.Code)
	assert.Equal(t, notifications.FilterOrders, st.Filter())
}

func TestMarkReadAndReadAll(t *testing.T) {
	router, st, queue := newInboxRouter(t, "en")

	res := do(router, http.MethodPost, "/dashboard/notifications/2/read")
	assert.Equal(t, http.StatusSeeOther, res.Code)
	assert.Equal(t, 3, st.Unread())
	assert.Empty(t, queue.List())

	res = do(router, http.MethodPost, "/dashboard/notifications/read-all")
	assert.Equal(t, http.StatusSeeOther, res.Code)
	assert.Equal(t, 0, st.Unread())
	require.Len(t, queue.List(), 1)
	assert.Equal(t, "All notifications marked as read", queue.List()[0].Message)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodPost, "/dashboard/notifications/abc/read").Code)
}
