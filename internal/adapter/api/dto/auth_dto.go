package dto

import (
	"time"
)

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=200"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Success                bool      `json:"success"`
	SessionToken           string    `json:"sessionToken"`
	ExpiresAt              time.Time `json:"expiresAt"`
	SessionDurationMinutes int       `json:"sessionDurationMinutes"`
}

// LoginFailedResponse is returned when credentials do not match.
type LoginFailedResponse struct {
	Error             string `json:"error"`
	AttemptsRemaining int    `json:"attemptsRemaining"`
}

// LoginLockedResponse is returned while the caller IP is locked out.
type LoginLockedResponse struct {
	Error          string `json:"error"`
	Locked         bool   `json:"locked"`
	LockoutMinutes int    `json:"lockoutMinutes"`
}

// VerifyRequest carries a session token to validate.
type VerifyRequest struct {
	SessionToken string `json:"sessionToken" binding:"required,max=128"`
}

// VerifyResponse reports session validity, with the slid expiry when valid.
type VerifyResponse struct {
	Valid     bool       `json:"valid"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// LogoutRequest carries an optional session token to revoke.
type LogoutRequest struct {
	SessionToken string `json:"sessionToken" binding:"max=128"`
}

// LogoutResponse acknowledges a logout.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// AuditLogRequest appends an audit entry under a valid session.
type AuditLogRequest struct {
	SessionToken string                 `json:"sessionToken" binding:"required,max=128"`
	AuditAction  string                 `json:"auditAction" binding:"required,max=100"`
	Details      map[string]interface{} `json:"details"`
}
