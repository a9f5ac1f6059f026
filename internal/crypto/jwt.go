package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the token was well-formed and correctly
	// signed but its expiry has passed. Callers treat this case
	// separately because it triggers cookie cleanup.
	ErrTokenExpired = errors.New("session token expired")
	// ErrTokenInvalid covers signature, issuer and audience failures.
	ErrTokenInvalid = errors.New("invalid session token")
	// ErrTokenMalformed means the string could not be parsed as a token.
	ErrTokenMalformed = errors.New("malformed session token")
)

// TokenTTL is the fixed lifetime of a session token.
const TokenTTL = time.Hour

const (
	tokenIssuer   = "portfolio"
	tokenAudience = "portfolio-admin"
)

// SessionClaims are the claims carried by an admin session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// IssueToken creates a signed session token for the given identity,
// valid for exactly one hour from issuance.
func IssueToken(email, secret string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken parses and validates a session token, returning the claims
// on success. Failures are classified so the route guard can distinguish
// an expired session (clear the cookie) from a forged or garbled one.
func VerifyToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
