package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/odyssey-erp/odyssey-admin/internal/analytics"
	"github.com/odyssey-erp/odyssey-admin/internal/auth"
	"github.com/odyssey-erp/odyssey-admin/internal/i18n"
	"github.com/odyssey-erp/odyssey-admin/internal/notifications"
	"github.com/odyssey-erp/odyssey-admin/internal/observability"
	"github.com/odyssey-erp/odyssey-admin/internal/orders"
	"github.com/odyssey-erp/odyssey-admin/internal/prefs"
	"github.com/odyssey-erp/odyssey-admin/internal/products"
	"github.com/odyssey-erp/odyssey-admin/internal/shared"
	"github.com/odyssey-erp/odyssey-admin/internal/toast"
	"github.com/odyssey-erp/odyssey-admin/internal/users"
	"github.com/odyssey-erp/odyssey-admin/internal/view"
	"github.com/odyssey-erp/odyssey-admin/internal/workspace"
)

// Deps are the collaborators the console is assembled from.
type Deps struct {
	Config   *Config
	Logger   *slog.Logger
	Redis    *redis.Client
	Metrics  *observability.Metrics
	Accounts auth.Repository

	// Now and Schedule override the clock and toast timers in tests.
	Now      func() time.Time
	Schedule toast.Scheduler
}

// App is the assembled console.
type App struct {
	Handler  http.Handler
	Registry *workspace.Registry
	Sessions *shared.SessionManager

	cfg    *Config
	logger *slog.Logger
}

// New wires stores, handlers and middleware into an App.
func New(deps Deps) (*App, error) {
	if deps.Config == nil {
		return nil, errors.New("app: config required")
	}
	if deps.Redis == nil {
		return nil, errors.New("app: redis client required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = NewLogger(deps.Config)
	}
	accounts := deps.Accounts
	if accounts == nil {
		demo, err := auth.NewDemoRepository()
		if err != nil {
			return nil, fmt.Errorf("app: demo accounts: %w", err)
		}
		accounts = demo
	}
	cfg := deps.Config

	sessions := shared.NewSessionManager(deps.Redis, cfg.SessionCookie, cfg.SessionTTL, cfg.IsProduction())
	csrf := shared.NewCSRFManager(cfg.CSRFSecret)
	preferences := prefs.NewService(prefs.NewRedisStorage(deps.Redis, cfg.PrefsTTL), logger)
	registry := workspace.NewRegistry(workspace.Config{
		IdleTTL:  cfg.WorkspaceIdleTTL,
		ToastTTL: cfg.ToastTTL,
		Now:      deps.Now,
		Schedule: deps.Schedule,
	}, logger, deps.Metrics)

	engine, err := view.NewEngine()
	if err != nil {
		return nil, fmt.Errorf("app: parse templates: %w", err)
	}
	renderer := view.NewRenderer(engine, layoutFunc(csrf, logger), logger)

	hooks := auth.Hooks{
		SignedIn: func(r *http.Request, sessionID string) {
			msg := i18n.T(prefs.Language(r.Context()), "login.welcome")
			registry.Get(sessionID).Toasts.Show(toast.Success, msg)
		},
		SignedOut: registry.Drop,
	}

	handler := NewRouter(RouterParams{
		Logger:         logger,
		Config:         cfg,
		SessionManager: sessions,
		CSRFManager:    csrf,
		Preferences:    preferences,
		Registry:       registry,
		Metrics:        deps.Metrics,

		AuthHandler:          auth.NewHandler(logger, auth.NewService(accounts), renderer, sessions, hooks),
		AnalyticsHandler:     analytics.NewHandler(logger, workspace.Summary, renderer),
		UsersHandler:         users.NewHandler(logger, workspace.Users, workspace.Toasts, renderer, deps.Metrics),
		OrdersHandler:        orders.NewHandler(logger, workspace.Orders, workspace.Toasts, renderer, deps.Metrics),
		ProductsHandler:      products.NewHandler(logger, workspace.Products, renderer),
		NotificationsHandler: notifications.NewHandler(logger, workspace.Notifications, workspace.Toasts, renderer),
		PrefsHandler:         prefs.NewHandler(logger, workspace.Toasts, renderer),
		ToastHandler:         toast.NewHandler(workspace.Toasts),
	})

	return &App{Handler: handler, Registry: registry, Sessions: sessions, cfg: cfg, logger: logger}, nil
}

// Server returns the HTTP server for the configured address.
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:              a.cfg.AppAddr,
		Handler:           a.Handler,
		ReadTimeout:       a.cfg.AppReadTimeout,
		ReadHeaderTimeout: a.cfg.AppReadTimeout,
		WriteTimeout:      a.cfg.AppWriteTimeout,
	}
}

// Reap runs the idle workspace reaper until ctx ends.
func (a *App) Reap(ctx context.Context) error {
	return a.Registry.Run(ctx, a.cfg.WorkspaceReap)
}
