package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/odyssey-admin/internal/i18n"
	"github.com/odyssey-erp/odyssey-admin/internal/prefs"
	"github.com/odyssey-erp/odyssey-admin/internal/shared"
	"github.com/odyssey-erp/odyssey-admin/internal/view"
)

// HomePath is where a signed-in operator lands.
const HomePath = "/dashboard/analytics"

// Hooks lets the application react to sign-in and sign-out.
type Hooks struct {
	SignedIn  func(r *http.Request, sessionID string)
	SignedOut func(sessionID string)
}

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger         *slog.Logger
	service        *Service
	renderer       *view.Renderer
	sessionManager *shared.SessionManager
	hooks          Hooks
	validator      *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, renderer *view.Renderer, sessions *shared.SessionManager, hooks Hooks) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:         logger,
		service:        service,
		renderer:       renderer,
		sessionManager: sessions,
		hooks:          hooks,
		validator:      validator.New(),
	}
}

// MountRoutes registers auth routes on provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.With(RedirectIfAuthenticated).Get("/login", h.showLogin)
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type loginPageData struct {
	Form  loginForm
	Error string
}

func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, http.StatusOK, "login.html", "login.title", loginPageData{})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	sess := shared.SessionFromContext(r.Context())
	form := loginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	err := h.validator.Struct(form)
	if err == nil {
		var account *Account
		account, err = h.service.Authenticate(r.Context(), form.Email, form.Password)
		if err == nil && sess != nil {
			sess.SignIn(account.Profile())
			h.logger.Info("signed in", slog.String("user", account.ID))
			if h.hooks.SignedIn != nil {
				h.hooks.SignedIn(r, sess.ID)
			}
			http.Redirect(w, r, HomePath, http.StatusSeeOther)
			return
		}
		if sess == nil {
			h.logger.Error("session missing during login")
		}
	}

	form.Password = ""
	data := loginPageData{Form: form, Error: i18n.T(prefs.Language(r.Context()), "login.invalid")}
	h.renderer.Page(w, r, http.StatusBadRequest, "login.html", "login.title", data)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		if h.hooks.SignedOut != nil {
			h.hooks.SignedOut(sess.ID)
		}
		h.sessionManager.Destroy(sess)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// RequireAuth sends unauthenticated requests to the login page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !shared.SessionFromContext(r.Context()).Authenticated() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RedirectIfAuthenticated sends signed-in operators to the dashboard.
func RedirectIfAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if shared.SessionFromContext(r.Context()).Authenticated() {
			http.Redirect(w, r, HomePath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
