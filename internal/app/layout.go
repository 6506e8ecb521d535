package app

import (
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"github.com/odyssey-erp/odyssey-admin/internal/prefs"
	"github.com/odyssey-erp/odyssey-admin/internal/shared"
	"github.com/odyssey-erp/odyssey-admin/internal/toast"
	"github.com/odyssey-erp/odyssey-admin/internal/view"
	"github.com/odyssey-erp/odyssey-admin/internal/workspace"
)

// layoutFunc assembles the page shell from the request's session,
// preferences and workspace.
func layoutFunc(csrf *shared.CSRFManager, logger *slog.Logger) view.LayoutFunc {
	return func(r *http.Request) view.Layout {
		ctx := r.Context()
		sess := shared.SessionFromContext(ctx)
		p := prefs.FromContext(ctx).Get()

		layout := view.Layout{
			CurrentPath:      r.URL.Path,
			User:             sess.Profile(),
			Lang:             p.Language,
			Dir:              p.Dir(),
			Theme:            p.Theme,
			ModeClass:        p.ModeClass(),
			Dark:             p.Dark(),
			SidebarCollapsed: p.SidebarCollapsed,
		}
		if sess != nil {
			token, err := csrf.EnsureToken(ctx, sess)
			if err != nil {
				logger.Error("ensure csrf token", slog.Any("error", err))
			}
			layout.CSRFToken = token
		}
		if ws := workspace.FromRequest(r); ws != nil {
			layout.Toasts = lo.Map(ws.Toasts.List(), func(t toast.Toast, _ int) view.ToastView {
				return view.ToastView{ID: t.ID, Kind: string(t.Kind), Message: t.Message}
			})
			layout.Unread = ws.Notifications.Unread()
		}
		return layout
	}
}
