package session

import (
	"context"
	"time"
)

// Repository defines the persistence operations backing the auth service.
// CreateExclusive must deactivate every other active session and insert the
// new one inside a single transaction, so concurrent logins cannot leave
// zero or duplicate active sessions.
type Repository interface {
	// CreateExclusive deactivates all active sessions and inserts s atomically
	CreateExclusive(ctx context.Context, s *AdminSession) error

	// FindActiveByToken fetches an active session by its token
	FindActiveByToken(ctx context.Context, token string) (*AdminSession, error)

	// UpdateExpiry slides a session's expiry forward
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error

	// Deactivate marks a session inactive by id
	Deactivate(ctx context.Context, id string) error

	// DeactivateByToken marks a session inactive by token
	DeactivateByToken(ctx context.Context, token string) error

	// RecordAttempt appends a login attempt row
	RecordAttempt(ctx context.Context, a *LoginAttempt) error

	// CountRecentFailures counts failed attempts from an IP since the given time
	CountRecentFailures(ctx context.Context, ipAddress string, since time.Time) (int, error)

	// AppendAudit appends an audit log row
	AppendAudit(ctx context.Context, l *AuditLog) error
}
