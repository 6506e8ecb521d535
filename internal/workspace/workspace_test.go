package workspace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/odyssey-admin/internal/observability"
	"github.com/odyssey-erp/odyssey-admin/internal/shared"
	"github.com/odyssey-erp/odyssey-admin/internal/toast"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type countingTimer struct{ stopped *int }

func (t countingTimer) Stop() bool { *t.stopped++; return true }

func newRegistry(t *testing.T) (*Registry, *clock, *int) {
	t.Helper()
	c := &clock{now: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)}
	stopped := 0
	reg := NewRegistry(Config{
		IdleTTL:  10 * time.Minute,
		Now:      c.Now,
		Schedule: func(time.Duration, func()) toast.Timer { return countingTimer{stopped: &stopped} },
	}, nil, observability.NewMetrics())
	return reg, c, &stopped
}

func TestGetSeedsOncePerSession(t *testing.T) {
	reg, _, _ := newRegistry(t)

	a := reg.Get("s1")
	require.NotNil(t, a)
	assert.Len(t, a.Users.All(), 12)
	assert.Len(t, a.Orders.All(), 8)
	assert.Same(t, a, reg.Get("s1"))

	b := reg.Get("s2")
	assert.NotSame(t, a, b)

	a.Users.Delete(1)
	assert.Len(t, b.Users.All(), 12)
	assert.Equal(t, 2, reg.Len())
}

func TestDropStopsToastTimers(t *testing.T) {
	reg, _, stopped := newRegistry(t)
	ws := reg.Get("s1")
	ws.Toasts.Show(toast.Info, "one")
	ws.Toasts.Show(toast.Info, "two")

	reg.Drop("s1")
	assert.Equal(t, 2, *stopped)
	_, ok := reg.Lookup("s1")
	assert.False(t, ok)

	reg.Drop("s1")
	assert.Equal(t, 0, reg.Len())
}

func TestReapEvictsIdleWorkspaces(t *testing.T) {
	reg, c, _ := newRegistry(t)
	reg.Get("old")
	c.Advance(6 * time.Minute)
	reg.Get("fresh")
	c.Advance(5 * time.Minute)

	assert.Equal(t, 1, reg.Reap())
	_, ok := reg.Lookup("old")
	assert.False(t, ok)
	_, ok = reg.Lookup("fresh")
	assert.True(t, ok)
}

func TestGetSurvivesConcurrentReap(t *testing.T) {
	reg, c, _ := newRegistry(t)
	for i := 0; i < 200; i++ {
		reg.Get("s1")
		c.Advance(11 * time.Minute)

		var wg sync.WaitGroup
		var got *Workspace
		wg.Add(2)
		go func() {
			defer wg.Done()
			got = reg.Get("s1")
		}()
		go func() {
			defer wg.Done()
			reg.Reap()
		}()
		wg.Wait()

		live, ok := reg.Lookup("s1")
		require.True(t, ok, "iteration %d", i)
		require.Same(t, got, live, "iteration %d", i)
	}
}

func TestRunStopsWithContext(t *testing.T) {
	reg, _, _ := newRegistry(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- reg.Run(ctx, time.Millisecond) }()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reaper did not stop")
	}
}

func TestMiddlewareAttachesWorkspaceForSignedInSessions(t *testing.T) {
	reg, _, _ := newRegistry(t)

	var seen *Workspace
	handler := reg.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromRequest(r)
	}))

	anon := &shared.Session{ID: "anon"}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req.WithContext(shared.ContextWithSession(req.Context(), anon)))
	assert.Nil(t, seen)
	assert.Equal(t, 0, reg.Len())

	signed := &shared.Session{ID: "s1"}
	signed.SignIn(shared.Profile{ID: "1", Name: "Admin User"})
	handler.ServeHTTP(httptest.NewRecorder(), req.WithContext(shared.ContextWithSession(req.Context(), signed)))
	require.NotNil(t, seen)
	assert.Same(t, seen, reg.Get("s1"))
	assert.NotNil(t, Toasts(req.WithContext(context.WithValue(req.Context(), contextKey{}, seen))))
}

func TestSummaryTracksLiveStores(t *testing.T) {
	reg, _, _ := newRegistry(t)
	ws := reg.Get("s1")

	before := ws.Summary()
	assert.Equal(t, 12, before.Users.Total)
	assert.Equal(t, 8, before.Orders.Total)
	assert.Equal(t, 4, before.Unread)

	ws.Users.Delete(1)
	ws.Notifications.MarkAllRead()

	after := ws.Summary()
	assert.Equal(t, 11, after.Users.Total)
	assert.Zero(t, after.Unread)
}
