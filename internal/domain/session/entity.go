package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session policy knobs. The duration applies both to the initial expiry and
// to every slide on verify.
const (
	DurationMinutes = 30
	Duration        = DurationMinutes * time.Minute

	MaxLoginAttempts       = 5
	LockoutDurationMinutes = 15
	LockoutWindow          = LockoutDurationMinutes * time.Minute
)

// Audit actions recorded by the auth service.
const (
	ActionLoginSuccess = "login_success"
	ActionLoginFailed  = "login_failed"
	ActionLogout       = "logout"
)

// AdminSession is a server-side session row. At most one session is active
// system-wide: login deactivates all others in the same transaction that
// inserts the new row.
type AdminSession struct {
	ID        string    `json:"id"`
	Token     string    `json:"session_token"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	ExpiresAt time.Time `json:"expires_at"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAdminSession creates an active session with a fresh random 256-bit token.
func NewAdminSession(ipAddress, userAgent string) (*AdminSession, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &AdminSession{
		ID:        uuid.New().String(),
		Token:     token,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: now.Add(Duration),
		IsActive:  true,
		CreatedAt: now,
	}, nil
}

// IsExpired reports whether the session expiry has passed.
func (s *AdminSession) IsExpired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// Slide extends the expiry by the full session duration from now.
func (s *AdminSession) Slide(now time.Time) {
	s.ExpiresAt = now.Add(Duration)
}

// generateToken returns 32 random bytes hex-encoded (64 characters).
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// LoginAttempt is an append-only record used for rate limiting.
type LoginAttempt struct {
	ID                string    `json:"id"`
	IPAddress         string    `json:"ip_address"`
	WasSuccessful     bool      `json:"was_successful"`
	UsernameAttempted string    `json:"username_attempted"`
	AttemptedAt       time.Time `json:"attempted_at"`
}

// NewLoginAttempt records a login outcome for an IP.
func NewLoginAttempt(ipAddress, username string, successful bool) *LoginAttempt {
	return &LoginAttempt{
		ID:                uuid.New().String(),
		IPAddress:         ipAddress,
		WasSuccessful:     successful,
		UsernameAttempted: username,
		AttemptedAt:       time.Now(),
	}
}

// AuditLog is an append-only forensic record of admin activity.
type AuditLog struct {
	ID        string          `json:"id"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details,omitempty"`
	IPAddress string          `json:"ip_address"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewAuditLog creates an audit entry. Details may be nil.
func NewAuditLog(action string, details map[string]interface{}, ipAddress string) (*AuditLog, error) {
	var raw json.RawMessage
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			return nil, fmt.Errorf("failed to encode audit details: %w", err)
		}
		raw = b
	}

	return &AuditLog{
		ID:        uuid.New().String(),
		Action:    action,
		Details:   raw,
		IPAddress: ipAddress,
		CreatedAt: time.Now(),
	}, nil
}
