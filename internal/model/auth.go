package model

// LoginRequest represents an admin login attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned from the login endpoint. The token itself
// travels in an http-only cookie, never in the body.
type LoginResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
