package prefs

import (
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
	"github.com/odyssey-erp/odyssey-admin/internal/view"
)

type idleTimer struct{}

func (idleTimer) Stop() bool { return true }

func newPrefsRouter(t *testing.T) (http.Handler, *Store, *toast.Queue) {
	t.Helper()
	engine, err := view.NewEngine()
	require.NoError(t, err)
	st := NewStore(Defaults("en"))
	renderer := view.NewRenderer(engine, func(r *http.Request) view.Layout {
		p := FromContext(r.Context()).Get()
		return view.Layout{Lang: p.Language, Dir: p.Dir(), Theme: p.Theme, CurrentPath: r.URL.Path, User: &shared.Profile{Name: "Admin User"}}
	}, nil)
	queue := toast.NewQueue(toast.WithScheduler(func(time.Duration, func()) toast.Timer { return idleTimer{} }))
	h := NewHandler(nil, func(*http.Request) *toast.Queue { return queue }, renderer)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(ContextWithStore(r.Context(), st)))
		})
	})
	router.Route("/dashboard/settings", h.MountSettings)
	router.Route("/dashboard/prefs", h.MountToggles)
	return router, st, queue
}

func post(router http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestSettingsPageRendersChoices(t *testing.T) {
	router, _, _ := newPrefsRouter(t)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/dashboard/settings", nil))
	require.Equal(t, http.StatusOK, res.Code)
	body := res.Body.String()
	assert.Contains(t, body, `value="corporate"`)
	assert.Contains(t, body, "العربية")
}

func TestSaveSettings(t *testing.T) {
	router, st, queue := newPrefsRouter(t)

	res := post(router, "/dashboard/settings", url.Values{"language": {"ar"}, "theme": {"minimal"}})
	assert.Equal(t, http.StatusSeeOther, res.Code)
	assert.Equal(t, "ar", st.Get().Language)
	assert.Equal(t, ThemeMinimal, st.Get().Theme)
	require.Len(t, queue.List(), 1)
	assert.Equal(t, "تم حفظ الإعدادات", queue.List()[0].Message)

	res = post(router, "/dashboard/settings", url.Values{"theme": {"neon"}})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, ThemeMinimal, st.Get().Theme)
}

func TestTogglesRedirectToLocalReturnPath(t *testing.T) {
	router, st, _ := newPrefsRouter(t)

	res := post(router, "/dashboard/prefs/mode", url.Values{"return": {"/dashboard/users"}})
	assert.Equal(t, http.StatusSeeOther, res.Code)
	assert.Equal(t, "/dashboard/users", res.Header().Get("Location"))
	assert.True(t, st.Get().Dark())

	res = post(router, "/dashboard/prefs/sidebar", url.Values{"return": {"https://evil.example"}})
	assert.Equal(t, "/dashboard/analytics", res.Header().Get("Location"))
	assert.True(t, st.Get().SidebarCollapsed)

	post(router, "/dashboard/prefs/language", url.Values{})
	assert.Equal(t, "ar", st.Get().Language)
}

func TestSaveSettingsRejectsWholeFormOnAnyInvalidValue(t *testing.T) {
	router, st, queue := newPrefsRouter(t)
	saves := 0
	st.Subscribe(func(Preferences) { saves++ })

	res := post(router, "/dashboard/settings", url.Values{"language": {"ar"}, "theme": {"neon"}})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "en", st.Get().Language)
	assert.Equal(t, Defaults("en").Theme, st.Get().Theme)
	assert.Zero(t, saves)
	assert.Empty(t, queue.List())
}
