package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/dto"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/repository"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/session"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/logger"
)

// fakeSessionRepo is an in-memory session.Repository for handler tests.
type fakeSessionRepo struct {
	sessions []*session.AdminSession
	attempts []*session.LoginAttempt
	audits   []*session.AuditLog
}

func (f *fakeSessionRepo) CreateExclusive(_ context.Context, s *session.AdminSession) error {
	for _, existing := range f.sessions {
		existing.IsActive = false
	}
	copied := *s
	f.sessions = append(f.sessions, &copied)
	return nil
}

func (f *fakeSessionRepo) FindActiveByToken(_ context.Context, token string) (*session.AdminSession, error) {
	for _, s := range f.sessions {
		if s.Token == token && s.IsActive {
			copied := *s
			return &copied, nil
		}
	}
	return nil, repository.ErrSessionNotFound
}

func (f *fakeSessionRepo) UpdateExpiry(_ context.Context, id string, expiresAt time.Time) error {
	for _, s := range f.sessions {
		if s.ID == id && s.IsActive {
			s.ExpiresAt = expiresAt
			return nil
		}
	}
	return repository.ErrSessionNotFound
}

func (f *fakeSessionRepo) Deactivate(_ context.Context, id string) error {
	for _, s := range f.sessions {
		if s.ID == id {
			s.IsActive = false
		}
	}
	return nil
}

func (f *fakeSessionRepo) DeactivateByToken(_ context.Context, token string) error {
	for _, s := range f.sessions {
		if s.Token == token {
			s.IsActive = false
		}
	}
	return nil
}

func (f *fakeSessionRepo) RecordAttempt(_ context.Context, a *session.LoginAttempt) error {
	f.attempts = append(f.attempts, a)
	return nil
}

func (f *fakeSessionRepo) CountRecentFailures(_ context.Context, ip string, since time.Time) (int, error) {
	n := 0
	for _, a := range f.attempts {
		if a.IPAddress == ip && !a.WasSuccessful && !a.AttemptedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeSessionRepo) AppendAudit(_ context.Context, l *session.AuditLog) error {
	f.audits = append(f.audits, l)
	return nil
}

func (f *fakeSessionRepo) activeSessions() []*session.AdminSession {
	var active []*session.AdminSession
	for _, s := range f.sessions {
		if s.IsActive {
			active = append(active, s)
		}
	}
	return active
}

const (
	testUsername = "admin"
	testPassword = "correct horse battery staple"
)

func newAuthRouter(t *testing.T, repo *fakeSessionRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	c := NewAuthController(repo, AdminCredentials{
		Username:     testUsername,
		PasswordHash: string(hash),
	}, logger.NewLogger())

	r := gin.New()
	r.POST("/auth/login", c.Login)
	r.POST("/auth/verify", c.Verify)
	r.POST("/auth/logout", c.Logout)
	r.POST("/auth/log", c.Log)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}, ip string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to encode request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	repo := &fakeSessionRepo{}
	r := newAuthRouter(t, repo)

	w := postJSON(t, r, "/auth/login", dto.LoginRequest{Username: testUsername, Password: testPassword}, "203.0.113.7")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	if len(resp.SessionToken) != 64 {
		t.Errorf("token length = %d, want 64", len(resp.SessionToken))
	}
	if resp.SessionDurationMinutes != session.DurationMinutes {
		t.Errorf("sessionDurationMinutes = %d, want %d", resp.SessionDurationMinutes, session.DurationMinutes)
	}
	if len(repo.activeSessions()) != 1 {
		t.Errorf("active sessions = %d, want 1", len(repo.activeSessions()))
	}
}

func TestLoginDeactivatesPreviousSession(t *testing.T) {
	repo := &fakeSessionRepo{}
	r := newAuthRouter(t, repo)

	creds := dto.LoginRequest{Username: testUsername, Password: testPassword}
	postJSON(t, r, "/auth/login", creds, "203.0.113.7")
	postJSON(t, r, "/auth/login", creds, "203.0.113.8")

	if got := len(repo.activeSessions()); got != 1 {
		t.Errorf("active sessions = %d, want exactly 1 after a second login", got)
	}
	if len(repo.sessions) != 2 {
		t.Errorf("stored sessions = %d, want 2", len(repo.sessions))
	}
}

func TestLoginWrongPasswordCountsDown(t *testing.T) {
	repo := &fakeSessionRepo{}
	r := newAuthRouter(t, repo)

	bad := dto.LoginRequest{Username: testUsername, Password: "wrong"}
	for i := 0; i < 2; i++ {
		w := postJSON(t, r, "/auth/login", bad, "203.0.113.7")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: status = %d, want 401", i+1, w.Code)
		}

		var resp dto.LoginFailedResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		want := session.MaxLoginAttempts - i - 1
		if resp.AttemptsRemaining != want {
			t.Errorf("attempt %d: attemptsRemaining = %d, want %d", i+1, resp.AttemptsRemaining, want)
		}
	}
}

func TestLoginLockoutAfterMaxFailures(t *testing.T) {
	repo := &fakeSessionRepo{}
	r := newAuthRouter(t, repo)

	bad := dto.LoginRequest{Username: testUsername, Password: "wrong"}
	for i := 0; i < session.MaxLoginAttempts; i++ {
		if w := postJSON(t, r, "/auth/login", bad, "203.0.113.7"); w.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: status = %d, want 401", i+1, w.Code)
		}
	}

	// Once locked, even the correct credentials are refused unchecked.
	w := postJSON(t, r, "/auth/login", dto.LoginRequest{Username: testUsername, Password: testPassword}, "203.0.113.7")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429; body: %s", w.Code, w.Body.String())
	}

	var resp dto.LoginLockedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Locked {
		t.Error("locked = false")
	}
	if resp.LockoutMinutes != session.LockoutDurationMinutes {
		t.Errorf("lockoutMinutes = %d, want %d", resp.LockoutMinutes, session.LockoutDurationMinutes)
	}
	if len(repo.activeSessions()) != 0 {
		t.Error("a session was created while locked out")
	}
}

func TestLockoutIsPerIP(t *testing.T) {
	repo := &fakeSessionRepo{}
	r := newAuthRouter(t, repo)

	bad := dto.LoginRequest{Username: testUsername, Password: "wrong"}
	for i := 0; i < session.MaxLoginAttempts; i++ {
		postJSON(t, r, "/auth/login", bad, "203.0.113.7")
	}

	w := postJSON(t, r, "/auth/login", dto.LoginRequest{Username: testUsername, Password: testPassword}, "198.51.100.2")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 from an unlocked IP", w.Code)
	}
}

func TestVerifySlidesExpiry(t *testing.T) {
	repo := &fakeSessionRepo{}
	r := newAuthRouter(t, repo)

	w := postJSON(t, r, "/auth/login", dto.LoginRequest{Username: testUsername, Password: testPassword}, "203.0.113.7")
	var login dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	// Back-date the stored expiry so the slide is observable.
	repo.sessions[0].ExpiresAt = time.Now().Add(time.Minute)

	w = postJSON(t, r, "/auth/verify", dto.VerifyRequest{SessionToken: login.SessionToken}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp dto.VerifyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Valid {
		t.Error("valid = false")
	}
	if resp.ExpiresAt == nil || resp.ExpiresAt.Before(time.Now().Add(session.Duration-time.Minute)) {
		t.Errorf("expiresAt = %v, expiry was not slid forward", resp.ExpiresAt)
	}
}

func TestVerifyExpiredSession(t *testing.T) {
	repo := &fakeSessionRepo{}
	r := newAuthRouter(t, repo)

	w := postJSON(t, r, "/auth/login", dto.LoginRequest{Username: testUsername, Password: testPassword}, "203.0.113.7")
	var login dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	repo.sessions[0].ExpiresAt = time.Now().Add(-time.Minute)

	w = postJSON(t, r, "/auth/verify", dto.VerifyRequest{SessionToken: login.SessionToken}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if len(repo.activeSessions()) != 0 {
		t.Error("expired session was not deactivated")
	}
}

func TestVerifyUnknownToken(t *testing.T) {
	repo := &fakeSessionRepo{}
	r := newAuthRouter(t, repo)

	w := postJSON(t, r, "/auth/verify", dto.VerifyRequest{SessionToken: "deadbeef"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	repo := &fakeSessionRepo{}
	r := newAuthRouter(t, repo)

	w := postJSON(t, r, "/auth/login", dto.LoginRequest{Username: testUsername, Password: testPassword}, "203.0.113.7")
	var login dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	if w := postJSON(t, r, "/auth/logout", dto.LogoutRequest{SessionToken: login.SessionToken}, ""); w.Code != http.StatusOK {
		t.Errorf("logout status = %d, want 200", w.Code)
	}
	if len(repo.activeSessions()) != 0 {
		t.Error("session still active after logout")
	}

	// Unknown and missing tokens succeed too.
	if w := postJSON(t, r, "/auth/logout", dto.LogoutRequest{SessionToken: "nosuchtoken"}, ""); w.Code != http.StatusOK {
		t.Errorf("logout status = %d, want 200 for unknown token", w.Code)
	}
	if w := postJSON(t, r, "/auth/logout", dto.LogoutRequest{}, ""); w.Code != http.StatusOK {
		t.Errorf("logout status = %d, want 200 for empty token", w.Code)
	}
}

func TestLogRequiresValidSession(t *testing.T) {
	repo := &fakeSessionRepo{}
	r := newAuthRouter(t, repo)

	w := postJSON(t, r, "/auth/log", dto.AuditLogRequest{
		SessionToken: "nosuchtoken",
		AuditAction:  "product_deleted",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	w = postJSON(t, r, "/auth/login", dto.LoginRequest{Username: testUsername, Password: testPassword}, "203.0.113.7")
	var login dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	before := len(repo.audits)
	w = postJSON(t, r, "/auth/log", dto.AuditLogRequest{
		SessionToken: login.SessionToken,
		AuditAction:  "product_deleted",
		Details:      map[string]interface{}{"product_id": "abc"},
	}, "203.0.113.7")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if len(repo.audits) != before+1 {
		t.Errorf("audit rows = %d, want %d", len(repo.audits), before+1)
	}
}
