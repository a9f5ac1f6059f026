package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rumanw99/Hussam-Awa-sub000/internal/crypto"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/session"
)

type contextKey string

const adminEmailKey contextKey = "adminEmail"

const (
	loginPath     = "/admin/login"
	dashboardPath = "/admin/dashboard"
)

// Guard gates access to administrative routes and manages the root-route
// redirect. Every branch resolves to continue-or-redirect; verification
// errors never reach the handler chain.
type Guard struct {
	secret     string
	adminEmail string
	cookieOpts session.CookieOptions
}

// NewGuard creates a route guard for the single configured admin identity.
func NewGuard(secret, adminEmail string, cookieOpts session.CookieOptions) *Guard {
	return &Guard{
		secret:     secret,
		adminEmail: adminEmail,
		cookieOpts: cookieOpts,
	}
}

// Pages protects the root path and everything under /admin except the
// login page.
func (g *Guard) Pages(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/":
			g.serveRoot(w, r, next)
		case isAdminPath(r.URL.Path) && r.URL.Path != loginPath:
			g.serveAdmin(w, r, next)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// serveRoot sends an authenticated admin straight to the dashboard.
// A stale or broken cookie is cleared and the visitor continues
// unauthenticated.
func (g *Guard) serveRoot(w http.ResponseWriter, r *http.Request, next http.Handler) {
	token, ok := g.cookieToken(r)
	if !ok {
		next.ServeHTTP(w, r)
		return
	}

	claims, err := crypto.VerifyToken(token, g.secret)
	if err != nil {
		session.ClearCookie(w, g.cookieOpts)
		next.ServeHTTP(w, r)
		return
	}

	if g.isAdmin(claims.Email) {
		http.Redirect(w, r, dashboardPath, http.StatusTemporaryRedirect)
		return
	}

	next.ServeHTTP(w, r)
}

// serveAdmin requires a valid token for the configured admin identity;
// anything else redirects to the login page. Only an expired token
// additionally clears the cookie.
func (g *Guard) serveAdmin(w http.ResponseWriter, r *http.Request, next http.Handler) {
	token, ok := g.cookieToken(r)
	if !ok {
		http.Redirect(w, r, loginPath, http.StatusTemporaryRedirect)
		return
	}

	claims, err := crypto.VerifyToken(token, g.secret)
	if err != nil {
		if errors.Is(err, crypto.ErrTokenExpired) {
			session.ClearCookie(w, g.cookieOpts)
		}
		http.Redirect(w, r, loginPath, http.StatusTemporaryRedirect)
		return
	}

	if !g.isAdmin(claims.Email) {
		http.Redirect(w, r, loginPath, http.StatusTemporaryRedirect)
		return
	}

	ctx := context.WithValue(r.Context(), adminEmailKey, claims.Email)
	next.ServeHTTP(w, r.WithContext(ctx))
}

func (g *Guard) cookieToken(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (g *Guard) isAdmin(email string) bool {
	return strings.EqualFold(email, g.adminEmail)
}

func isAdminPath(path string) bool {
	return path == "/admin" || strings.HasPrefix(path, "/admin/")
}

// AdminEmailFromContext extracts the authenticated admin identity set by
// the guard, if any.
func AdminEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(adminEmailKey).(string)
	return email, ok
}
