package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rumanw99/Hussam-Awa-sub000/internal/crypto"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/model"
)

func newTestAuthService() *AuthService {
	return NewAuthService("admin@example.com", "letmein", "", "test-secret")
}

func TestLogin_Success(t *testing.T) {
	svc := newTestAuthService()

	token, expiresAt, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "admin@example.com",
		Password: "letmein",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("Login() returned empty token")
	}
	if remaining := time.Until(expiresAt); remaining > time.Hour || remaining < 59*time.Minute {
		t.Errorf("Login() expiry %v from now, want ~1h", remaining)
	}

	claims, err := crypto.VerifyToken(token, "test-secret")
	if err != nil {
		t.Fatalf("VerifyToken() unexpected error: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("token email = %q, want configured admin", claims.Email)
	}
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	svc := newTestAuthService()

	if _, _, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "Admin@Example.COM",
		Password: "letmein",
	}); err != nil {
		t.Errorf("Login() unexpected error for case-folded email: %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestAuthService()

	_, _, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "admin@example.com",
		Password: "guess",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_WrongEmail(t *testing.T) {
	svc := newTestAuthService()

	_, _, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "intruder@example.com",
		Password: "letmein",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc := newTestAuthService()

	_, _, err := svc.Login(context.Background(), model.LoginRequest{Password: "letmein"})
	if !errors.Is(err, ErrEmailRequired) {
		t.Errorf("Login() error = %v, want ErrEmailRequired", err)
	}

	_, _, err = svc.Login(context.Background(), model.LoginRequest{Email: "admin@example.com"})
	if !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("Login() error = %v, want ErrPasswordRequired", err)
	}
}
