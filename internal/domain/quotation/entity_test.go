package quotation

import (
	"testing"
	"time"
)

func TestNewQuotation(t *testing.T) {
	given := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)

	q, err := NewQuotation("200 CP1 pallets", "Ravi Traders", given)
	if err != nil {
		t.Fatalf("NewQuotation() unexpected error: %v", err)
	}
	if q.ID == "" {
		t.Error("ID not assigned")
	}
	if q.Status != StatusPending {
		t.Errorf("Status = %s, want %s", q.Status, StatusPending)
	}
	if q.DateOrderReceived != nil {
		t.Error("DateOrderReceived should be nil for a new quotation")
	}

	if _, err := NewQuotation("", "Ravi Traders", given); err != ErrEmptyName {
		t.Errorf("NewQuotation(empty name) error = %v, want ErrEmptyName", err)
	}
	if _, err := NewQuotation("200 CP1 pallets", "", given); err != ErrEmptyCustomerName {
		t.Errorf("NewQuotation(empty customer) error = %v, want ErrEmptyCustomerName", err)
	}
}

func TestMarkReceived(t *testing.T) {
	q, err := NewQuotation("200 CP1 pallets", "Ravi Traders", time.Now())
	if err != nil {
		t.Fatalf("NewQuotation() unexpected error: %v", err)
	}

	received := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
	q.MarkReceived(received)

	if q.Status != StatusReceived {
		t.Errorf("Status = %s, want %s", q.Status, StatusReceived)
	}
	if q.DateOrderReceived == nil || !q.DateOrderReceived.Equal(received) {
		t.Errorf("DateOrderReceived = %v, want %v", q.DateOrderReceived, received)
	}
}

func TestUpdateRederivesStatus(t *testing.T) {
	q, err := NewQuotation("200 CP1 pallets", "Ravi Traders", time.Now())
	if err != nil {
		t.Fatalf("NewQuotation() unexpected error: %v", err)
	}

	received := time.Now()
	if err := q.Update("250 CP1 pallets", "Ravi Traders", q.DateGiven, &received); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if q.Status != StatusReceived {
		t.Errorf("Status = %s, want %s", q.Status, StatusReceived)
	}

	// Clearing the received date flips it back to pending.
	if err := q.Update("250 CP1 pallets", "Ravi Traders", q.DateGiven, nil); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if q.Status != StatusPending {
		t.Errorf("Status = %s, want %s", q.Status, StatusPending)
	}

	if err := q.Update("", "Ravi Traders", q.DateGiven, nil); err != ErrEmptyName {
		t.Errorf("Update(empty name) error = %v, want ErrEmptyName", err)
	}
}
