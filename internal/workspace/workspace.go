// Package workspace keeps the per-session entity stores and toast queue.
// A workspace is seeded from fixtures on first use and discarded on logout or
// after sitting idle.
package workspace

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/odyssey-erp/odyssey-admin/internal/analytics"
	"github.com/odyssey-erp/odyssey-admin/internal/notifications"
	"github.com/odyssey-erp/odyssey-admin/internal/observability"
	"github.com/odyssey-erp/odyssey-admin/internal/orders"
	"github.com/odyssey-erp/odyssey-admin/internal/products"
	"github.com/odyssey-erp/odyssey-admin/internal/shared"
	"github.com/odyssey-erp/odyssey-admin/internal/store"
	"github.com/odyssey-erp/odyssey-admin/internal/toast"
	"github.com/odyssey-erp/odyssey-admin/internal/users"
)

// Workspace bundles the stores one session works on.
type Workspace struct {
	Users         *users.Store
	Orders        *orders.Store
	Products      *products.Store
	Notifications *notifications.Store
	Toasts        *toast.Queue

	mu       sync.Mutex
	lastSeen time.Time
}

func (w *Workspace) touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

func (w *Workspace) idleSince() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen
}

// Config tunes a Registry.
type Config struct {
	IdleTTL  time.Duration
	ToastTTL time.Duration
	Now      func() time.Time
	Schedule toast.Scheduler
}

// Registry maps session ids to workspaces.
type Registry struct {
	cfg     Config
	logger  *slog.Logger
	metrics *observability.Metrics

	mu     sync.Mutex
	spaces map[string]*Workspace
}

// NewRegistry constructs a Registry.
func NewRegistry(cfg Config, logger *slog.Logger, metrics *observability.Metrics) *Registry {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 30 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{cfg: cfg, logger: logger, metrics: metrics, spaces: make(map[string]*Workspace)}
}

// Get returns the workspace for sessionID, creating it on first use. The
// workspace is touched before the registry lock is released so a concurrent
// Reap never evicts one that is being handed out.
func (reg *Registry) Get(sessionID string) *Workspace {
	now := reg.cfg.Now()
	reg.mu.Lock()
	ws, ok := reg.spaces[sessionID]
	if !ok {
		ws = reg.build()
		reg.spaces[sessionID] = ws
	}
	ws.touch(now)
	n := len(reg.spaces)
	reg.mu.Unlock()

	if !ok {
		reg.logger.Debug("workspace created", slog.String("session", sessionID))
		reg.metrics.SetWorkspaces(n)
	}
	return ws
}

// Lookup returns an existing workspace without creating one.
func (reg *Registry) Lookup(sessionID string) (*Workspace, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	ws, ok := reg.spaces[sessionID]
	return ws, ok
}

// Drop discards the workspace of sessionID and stops its toast timers.
func (reg *Registry) Drop(sessionID string) {
	reg.mu.Lock()
	ws, ok := reg.spaces[sessionID]
	delete(reg.spaces, sessionID)
	n := len(reg.spaces)
	reg.mu.Unlock()
	if !ok {
		return
	}
	ws.Toasts.Close()
	reg.metrics.SetWorkspaces(n)
}

// Len returns the number of live workspaces.
func (reg *Registry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.spaces)
}

// Reap drops every workspace idle for longer than the configured TTL and
// returns how many went.
func (reg *Registry) Reap() int {
	cutoff := reg.cfg.Now().Add(-reg.cfg.IdleTTL)
	reg.mu.Lock()
	var stale []*Workspace
	for id, ws := range reg.spaces {
		if ws.idleSince().Before(cutoff) {
			stale = append(stale, ws)
			delete(reg.spaces, id)
		}
	}
	n := len(reg.spaces)
	reg.mu.Unlock()

	for _, ws := range stale {
		ws.Toasts.Close()
	}
	if len(stale) > 0 {
		reg.metrics.SetWorkspaces(n)
	}
	return len(stale)
}

// Run reaps idle workspaces every interval until ctx ends.
func (reg *Registry) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := reg.Reap(); n > 0 {
				reg.logger.Info("reaped idle workspaces", slog.Int("count", n))
			}
		}
	}
}

func (reg *Registry) build() *Workspace {
	opts := []toast.Option{
		toast.WithTTL(reg.cfg.ToastTTL),
		toast.WithObserver(func(t toast.Toast) { reg.metrics.ToastShown(string(t.Kind)) }),
	}
	if reg.cfg.Schedule != nil {
		opts = append(opts, toast.WithScheduler(reg.cfg.Schedule))
	}
	ws := &Workspace{
		Users:         users.NewStore(users.Seed(), reg.cfg.Now),
		Orders:        orders.NewStore(orders.Seed()),
		Products:      products.NewStore(products.Seed()),
		Notifications: notifications.NewStore(notifications.Seed()),
		Toasts:        toast.NewQueue(opts...),
	}
	count := func(ev store.Event) { reg.metrics.Mutated(ev.Collection, string(ev.Op)) }
	ws.Users.Subscribe(count)
	ws.Orders.Subscribe(count)
	ws.Products.Subscribe(count)
	ws.Notifications.Subscribe(count)
	return ws
}

type contextKey struct{}

// Middleware attaches the session's workspace to the request. Requests
// without a signed-in session pass through untouched.
func (reg *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		if !sess.Authenticated() {
			next.ServeHTTP(w, r)
			return
		}
		ws := reg.Get(sess.ID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, ws)))
	})
}

// FromRequest returns the request's workspace, or nil.
func FromRequest(r *http.Request) *Workspace {
	ws, _ := r.Context().Value(contextKey{}).(*Workspace)
	return ws
}

// Users locates the request's user store.
func Users(r *http.Request) *users.Store { return FromRequest(r).Users }

// Orders locates the request's order store.
func Orders(r *http.Request) *orders.Store { return FromRequest(r).Orders }

// Products locates the request's catalogue.
func Products(r *http.Request) *products.Store { return FromRequest(r).Products }

// Notifications locates the request's inbox.
func Notifications(r *http.Request) *notifications.Store { return FromRequest(r).Notifications }

// Toasts locates the request's toast queue, or nil outside a workspace.
func Toasts(r *http.Request) *toast.Queue {
	if ws := FromRequest(r); ws != nil {
		return ws.Toasts
	}
	return nil
}

// Summary gathers the figures the analytics overview shows.
func (w *Workspace) Summary() analytics.Inputs {
	return analytics.Inputs{
		Users:    w.Users.Stats(),
		Orders:   w.Orders.Stats(),
		Products: w.Products.Stats(),
		Unread:   w.Notifications.Unread(),
	}
}

// Summary locates the request's analytics inputs.
func Summary(r *http.Request) analytics.Inputs { return FromRequest(r).Summary() }
