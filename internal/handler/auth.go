package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rumanw99/Hussam-Awa-sub000/internal/model"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/service"
	"github.com/rumanw99/Hussam-Awa-sub000/internal/session"
)

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	service    *service.AuthService
	cookieOpts session.CookieOptions
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, cookieOpts session.CookieOptions) *AuthHandler {
	return &AuthHandler{service: svc, cookieOpts: cookieOpts}
}

// HandleLogin handles POST /api/auth/login requests. On success the
// signed session token is set as an http-only cookie; the body carries
// only a success flag.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.LoginResponse{Error: "invalid request body"})
		return
	}

	token, expiresAt, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired), errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, model.LoginResponse{Error: err.Error()})
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, model.LoginResponse{Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, model.LoginResponse{Error: "internal server error"})
		}
		return
	}

	session.SetCookie(w, token, expiresAt, h.cookieOpts)
	writeJSON(w, http.StatusOK, model.LoginResponse{Success: true})
}

// HandleLogout handles POST /api/auth/logout requests.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	session.ClearCookie(w, h.cookieOpts)
	writeJSON(w, http.StatusOK, model.LoginResponse{Success: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
