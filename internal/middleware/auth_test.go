package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/crypto"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/session"
)

const (
	testSecret = "test-secret"
	adminEmail = "admin@example.com"
)

func newTestGuard() *Guard {
	return NewGuard(testSecret, adminEmail, session.CookieOptions{})
}

func passthrough() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("page"))
	})
}

// signToken builds tokens for arbitrary identities and expiries so the
// guard can be exercised without waiting out real lifetimes.
func signToken(t *testing.T, email string, expiresAt time.Time) string {
	t.Helper()
	claims := crypto.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "portfolio",
			Audience:  jwt.ClaimStrings{"portfolio-admin"},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		Email: email,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return token
}

func doRequest(guard *Guard, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	guard.Pages(passthrough()).ServeHTTP(rec, req)
	return rec
}

func TestAdminPathWithoutCookieRedirectsToLogin(t *testing.T) {
	rec := doRequest(newTestGuard(), "/admin/dashboard", "")

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTemporaryRedirect)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("Location = %q, want /admin/login", loc)
	}
}

func TestAdminPathWithAdminTokenProceeds(t *testing.T) {
	token := signToken(t, adminEmail, time.Now().Add(time.Hour))
	rec := doRequest(newTestGuard(), "/admin/dashboard", token)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (no redirect)", rec.Code, http.StatusOK)
	}
}

func TestAdminPathWithNonAdminTokenRedirects(t *testing.T) {
	token := signToken(t, "visitor@example.com", time.Now().Add(time.Hour))
	rec := doRequest(newTestGuard(), "/admin/dashboard", token)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want redirect", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("Location = %q, want /admin/login", loc)
	}
	// Non-expiry failures leave the cookie alone.
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			t.Error("guard must not clear the cookie for a non-admin identity")
		}
	}
}

func TestAdminPathWithExpiredTokenClearsCookie(t *testing.T) {
	token := signToken(t, adminEmail, time.Now().Add(-time.Minute))
	rec := doRequest(newTestGuard(), "/admin/dashboard", token)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want redirect", rec.Code)
	}

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expired token must clear the session cookie")
	}
}

func TestAdminPathWithGarbageTokenRedirectsWithoutClearing(t *testing.T) {
	rec := doRequest(newTestGuard(), "/admin/settings", "garbage")

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want redirect", rec.Code)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			t.Error("malformed token must not clear the cookie on admin paths")
		}
	}
}

func TestLoginPageAlwaysReachable(t *testing.T) {
	guard := newTestGuard()

	for name, token := range map[string]string{
		"unauthenticated": "",
		"garbage":         "garbage",
		"expired":         signToken(t, adminEmail, time.Now().Add(-time.Minute)),
		"admin":           signToken(t, adminEmail, time.Now().Add(time.Hour)),
	} {
		rec := doRequest(guard, "/admin/login", token)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: /admin/login status = %d, want %d", name, rec.Code, http.StatusOK)
		}
	}
}

func TestRootRedirectsAdminToDashboard(t *testing.T) {
	token := signToken(t, adminEmail, time.Now().Add(time.Hour))
	rec := doRequest(newTestGuard(), "/", token)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want redirect", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/dashboard" {
		t.Errorf("Location = %q, want /admin/dashboard", loc)
	}
}

func TestRootWithBrokenTokenClearsCookieAndProceeds(t *testing.T) {
	rec := doRequest(newTestGuard(), "/", "garbage")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (proceed unauthenticated)", rec.Code, http.StatusOK)
	}
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("root path must clear a broken session cookie")
	}
}

func TestRootWithNonAdminTokenProceeds(t *testing.T) {
	token := signToken(t, "visitor@example.com", time.Now().Add(time.Hour))
	rec := doRequest(newTestGuard(), "/", token)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestUnrelatedPathsPassThrough(t *testing.T) {
	rec := doRequest(newTestGuard(), "/api/hero", "")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestAdminEmailAttachedToContext(t *testing.T) {
	var got string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = AdminEmailFromContext(r.Context())
	})

	token := signToken(t, adminEmail, time.Now().Add(time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	newTestGuard().Pages(inner).ServeHTTP(httptest.NewRecorder(), req)

	if got != adminEmail {
		t.Errorf("context admin email = %q, want %q", got, adminEmail)
	}
}
