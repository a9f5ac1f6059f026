package session

import (
	"net/http"
	"time"
)

// CookieName is the session cookie carrying the signed admin token.
const CookieName = "portfolio_session"

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	Secure bool // enabled outside development
}

// SetCookie issues the session cookie to the client. The cookie is
// scoped to the whole site, http-only and lax same-site.
func SetCookie(w http.ResponseWriter, token string, expiresAt time.Time, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
