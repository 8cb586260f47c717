package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/inkwell-dev/inkwell/internal/domain/auth"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
	apperrors "github.com/inkwell-dev/inkwell/internal/errors"
)

const sessionCookieName = "session_id"

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (*domainauth.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandlers provides HTTP handlers for registration, login, and logout.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	T            *TemplateRenderer
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// RegisterForm handles the registration page.
// GET /register.
func (h *AuthHandlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, registerMeta()).WithFlash(w).Build()
	h.render(w, r, data)
}

// Register handles the registration form submission.
// POST /register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	req := model.RegisterRequest{
		Name:      r.FormValue("name"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
		Password2: r.FormValue("password2"),
	}

	_, err := h.Svc.Register(r.Context(), req)
	if err == nil {
		SetFlash(w, FlashSuccess, "You are now registered and can log in")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// Validation and conflict failures re-render the form with the
	// messages and sticky name/email. Passwords are never echoed back.
	var msgs []string
	switch {
	case isValidationFailure(err):
		if verrs, ok := apperrors.AsValidationErrors(err); ok {
			msgs = verrs.Messages()
		} else {
			msgs = []string{appErrorMessage(err, "Please check the form and try again.")}
		}
	case apperrors.IsConflict(err):
		msgs = []string{appErrorMessage(err, "Email already exists.")}
	default:
		h.logger().ErrorContext(r.Context(), "registration failed", "error", err)
		msgs = []string{"Something went wrong. Please try again later."}
	}

	data := NewTemplateData(r, registerMeta()).
		WithErrors(msgs).
		With("Name", req.Name).
		With("Email", req.Email).
		Build()
	h.render(w, r, data)
}

// LoginForm handles the login page.
// GET /login.
func (h *AuthHandlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, loginMeta()).WithFlash(w).Build()
	h.render(w, r, data)
}

// Login handles the login form submission.
// POST /login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	session, err := h.Svc.Login(r.Context(), email, password)
	if err != nil {
		if apperrors.IsAuth(err) {
			// One generic message for unknown email and wrong password alike.
			SetFlash(w, FlashError, appErrorMessage(err, "Invalid email or password"))
		} else {
			h.logger().ErrorContext(r.Context(), "login failed", "error", err)
			SetFlash(w, FlashError, "Something went wrong. Please try again later.")
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.setSessionCookie(w, r, *session)
	http.Redirect(w, r, safeRedirectPath(r.FormValue("redirect_uri")), http.StatusSeeOther)
}

// Logout handles the logout endpoint.
// GET /logout and POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	// Invalidate the server-side session if present. A failed delete is
	// logged but never blocks the redirect; the client cookie is cleared
	// either way.
	if sessionCookie, err := r.Cookie(sessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	h.clearCookie(w, r, sessionCookieName)

	// Flash before redirect so the notice survives onto the next page.
	SetFlash(w, FlashSuccess, "You have logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandlers) render(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if err := h.T.RenderFull(w, r, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func registerMeta() PageMeta {
	return PageMeta{Title: "Register", PageTitle: "Register", CurrentPage: PageRegister}
}

func loginMeta() PageMeta {
	return PageMeta{Title: "Login", PageTitle: "Login", CurrentPage: PageLogin}
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting cookies
// to maximize compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// isValidationFailure reports whether err is user-fixable form input, either
// a single validation AppError or a collected ValidationErrors list.
func isValidationFailure(err error) bool {
	if apperrors.IsValidation(err) {
		return true
	}
	_, ok := apperrors.AsValidationErrors(err)
	return ok
}

// appErrorMessage returns the client-facing message carried by an AppError,
// or the fallback when the error is not an AppError.
func appErrorMessage(err error, fallback string) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
