package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func findCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestSetCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	expires := time.Now().Add(time.Hour)

	SetCookie(rec, "token-value", expires, CookieOptions{Secure: true})

	c := findCookie(rec)
	if c == nil {
		t.Fatal("SetCookie() did not set the session cookie")
	}
	if c.Value != "token-value" {
		t.Errorf("cookie value = %q", c.Value)
	}
	if !c.HttpOnly {
		t.Error("cookie must be http-only")
	}
	if !c.Secure {
		t.Error("cookie must honor the secure option")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Error("cookie must be lax same-site")
	}
	if c.Path != "/" {
		t.Errorf("cookie path = %q, want /", c.Path)
	}
}

func TestClearCookie(t *testing.T) {
	rec := httptest.NewRecorder()

	ClearCookie(rec, CookieOptions{})

	c := findCookie(rec)
	if c == nil {
		t.Fatal("ClearCookie() did not set the session cookie")
	}
	if c.Value != "" {
		t.Errorf("cleared cookie value = %q, want empty", c.Value)
	}
	if c.MaxAge >= 0 {
		t.Errorf("cleared cookie max-age = %d, want negative", c.MaxAge)
	}
}
