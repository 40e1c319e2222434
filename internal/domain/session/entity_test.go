package session

import (
	"encoding/hex"
	"testing"
	"time"
)

func TestNewAdminSession(t *testing.T) {
	s, err := NewAdminSession("203.0.113.7", "Mozilla/5.0")
	if err != nil {
		t.Fatalf("NewAdminSession() unexpected error: %v", err)
	}

	if len(s.Token) != 64 {
		t.Errorf("token length = %d, want 64", len(s.Token))
	}
	if _, err := hex.DecodeString(s.Token); err != nil {
		t.Errorf("token is not hex: %v", err)
	}
	if !s.IsActive {
		t.Error("new session should be active")
	}

	want := s.CreatedAt.Add(Duration)
	if !s.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", s.ExpiresAt, want)
	}

	other, err := NewAdminSession("203.0.113.7", "Mozilla/5.0")
	if err != nil {
		t.Fatalf("NewAdminSession() unexpected error: %v", err)
	}
	if other.Token == s.Token {
		t.Error("two sessions received the same token")
	}
}

func TestIsExpired(t *testing.T) {
	s, err := NewAdminSession("203.0.113.7", "")
	if err != nil {
		t.Fatalf("NewAdminSession() unexpected error: %v", err)
	}

	if s.IsExpired(time.Now()) {
		t.Error("fresh session reported expired")
	}
	if !s.IsExpired(s.ExpiresAt.Add(time.Second)) {
		t.Error("session past its expiry not reported expired")
	}
}

func TestSlide(t *testing.T) {
	s, err := NewAdminSession("203.0.113.7", "")
	if err != nil {
		t.Fatalf("NewAdminSession() unexpected error: %v", err)
	}

	later := time.Now().Add(20 * time.Minute)
	s.Slide(later)

	want := later.Add(Duration)
	if !s.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", s.ExpiresAt, want)
	}
	if s.IsExpired(later) {
		t.Error("slid session reported expired")
	}
}

func TestNewAuditLog(t *testing.T) {
	a, err := NewAuditLog(ActionLoginFailed, map[string]interface{}{"attempts_remaining": 3}, "203.0.113.7")
	if err != nil {
		t.Fatalf("NewAuditLog() unexpected error: %v", err)
	}
	if a.Action != ActionLoginFailed {
		t.Errorf("Action = %s, want %s", a.Action, ActionLoginFailed)
	}
	if len(a.Details) == 0 {
		t.Error("Details not encoded")
	}

	a, err = NewAuditLog(ActionLogout, nil, "203.0.113.7")
	if err != nil {
		t.Fatalf("NewAuditLog() unexpected error: %v", err)
	}
	if a.Details != nil {
		t.Error("nil details should stay nil")
	}
}
