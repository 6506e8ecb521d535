package prefs

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/odyssey-erp/odyssey-admin/internal/i18n"
	"github.com/odyssey-erp/odyssey-admin/internal/shared"
)

// ClientCookie identifies a browser across sessions, the way local storage
// outlives a login.
const ClientCookie = "admin_client"

const clientCookieTTL = 365 * 24 * time.Hour

type storeContextKey struct{}

// ContextWithStore stores the preference store in context.
func ContextWithStore(ctx context.Context, st *Store) context.Context {
	return context.WithValue(ctx, storeContextKey{}, st)
}

// FromContext returns the request's preference store. Requests that skipped
// the middleware get a detached store with defaults.
func FromContext(ctx context.Context) *Store {
	if st, ok := ctx.Value(storeContextKey{}).(*Store); ok && st != nil {
		return st
	}
	return NewStore(Defaults(i18n.English))
}

// Language is a shortcut for FromContext(ctx).Get().Language.
func Language(ctx context.Context) string {
	return FromContext(ctx).Get().Language
}

// Middleware loads the browser's preferences once per request.
func Middleware(svc *Service, secure bool, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := ""
			if c, err := r.Cookie(ClientCookie); err == nil {
				if _, perr := uuid.Parse(c.Value); perr == nil {
					clientID = c.Value
				}
			}
			if clientID == "" {
				clientID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     ClientCookie,
					Value:    clientID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(clientCookieTTL),
				})
			}

			st, err := svc.Open(r.Context(), clientID, i18n.Negotiate(r.Header.Get("Accept-Language")))
			if err != nil {
				logger.Error("load preferences", slog.Any("error", err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			ctx := shared.ContextWithClientID(r.Context(), clientID)
			ctx = ContextWithStore(ctx, st)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
