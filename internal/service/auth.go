package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rumanw99/Hussam-Awa-sub000/internal/crypto"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
)

// AuthService authenticates the single configured admin identity and
// issues session tokens. There is no user table; credentials come from
// configuration.
type AuthService struct {
	adminEmail        string
	adminPassword     string
	adminPasswordHash string
	jwtSecret         string
}

// NewAuthService creates an AuthService for the configured admin
// credentials. adminPasswordHash, when non-empty, takes precedence over
// the plaintext password.
func NewAuthService(adminEmail, adminPassword, adminPasswordHash, jwtSecret string) *AuthService {
	return &AuthService{
		adminEmail:        adminEmail,
		adminPassword:     adminPassword,
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         jwtSecret,
	}
}

// Login checks the submitted credentials and returns a signed session
// token plus its expiry on success.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, time.Time, error) {
	if req.Email == "" {
		return "", time.Time{}, ErrEmailRequired
	}
	if req.Password == "" {
		return "", time.Time{}, ErrPasswordRequired
	}

	if !strings.EqualFold(req.Email, s.adminEmail) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	match, err := crypto.VerifyAdminPassword(req.Password, s.adminPassword, s.adminPasswordHash)
	if err != nil {
		return "", time.Time{}, err
	}
	if !match {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, err := crypto.IssueToken(s.adminEmail, s.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, time.Now().Add(crypto.TokenTTL), nil
}
