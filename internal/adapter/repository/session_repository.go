package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/session"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// SessionRepository implements session.Repository over PostgreSQL.
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *pgxpool.Pool) session.Repository {
	return &SessionRepository{db: db}
}

// CreateExclusive implements session.Repository.CreateExclusive. The
// deactivation of previous sessions and the insert of the new one share a
// transaction, so two concurrent logins cannot both end up active.
func (r *SessionRepository) CreateExclusive(ctx context.Context, s *session.AdminSession) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin session transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE admin_sessions SET is_active = false WHERE is_active = true`)
	if err != nil {
		return fmt.Errorf("failed to deactivate previous sessions: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO admin_sessions (
			id, session_token, ip_address, user_agent, expires_at, is_active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Token, s.IPAddress, s.UserAgent, s.ExpiresAt, s.IsActive, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit session transaction: %w", err)
	}
	return nil
}

// FindActiveByToken implements session.Repository.FindActiveByToken
func (r *SessionRepository) FindActiveByToken(ctx context.Context, token string) (*session.AdminSession, error) {
	var s session.AdminSession
	err := r.db.QueryRow(ctx,
		`SELECT id, session_token, ip_address, user_agent, expires_at, is_active, created_at
		 FROM admin_sessions WHERE session_token = $1 AND is_active = true`, token).Scan(
		&s.ID, &s.Token, &s.IPAddress, &s.UserAgent, &s.ExpiresAt, &s.IsActive, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return &s, nil
}

// UpdateExpiry implements session.Repository.UpdateExpiry
func (r *SessionRepository) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE admin_sessions SET expires_at = $2 WHERE id = $1 AND is_active = true`,
		id, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to update session expiry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Deactivate implements session.Repository.Deactivate
func (r *SessionRepository) Deactivate(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE admin_sessions SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate session: %w", err)
	}
	return nil
}

// DeactivateByToken implements session.Repository.DeactivateByToken
func (r *SessionRepository) DeactivateByToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE admin_sessions SET is_active = false WHERE session_token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to deactivate session: %w", err)
	}
	return nil
}

// RecordAttempt implements session.Repository.RecordAttempt
func (r *SessionRepository) RecordAttempt(ctx context.Context, a *session.LoginAttempt) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO login_attempts (
			id, ip_address, was_successful, username_attempted, attempted_at
		) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.IPAddress, a.WasSuccessful, a.UsernameAttempted, a.AttemptedAt)
	if err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}
	return nil
}

// CountRecentFailures implements session.Repository.CountRecentFailures
func (r *SessionRepository) CountRecentFailures(ctx context.Context, ipAddress string, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM login_attempts
		 WHERE ip_address = $1 AND was_successful = false AND attempted_at >= $2`,
		ipAddress, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count login failures: %w", err)
	}
	return count, nil
}

// AppendAudit implements session.Repository.AppendAudit
func (r *SessionRepository) AppendAudit(ctx context.Context, l *session.AuditLog) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO audit_logs (id, action, details, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.Action, l.Details, l.IPAddress, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}
