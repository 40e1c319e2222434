package quotation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("quotation name cannot be empty")
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
)

// Status is derived from whether an order was received for the quotation.
// Expired exists for forward compatibility but no transition produces it.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusReceived Status = "Received"
	StatusExpired  Status = "Expired"
)

// Quotation tracks a quoted offer and whether it converted into an order.
type Quotation struct {
	ID                string     `json:"id"`
	QuotationName     string     `json:"quotation_name"`
	CustomerName      string     `json:"customer_name"`
	DateGiven         time.Time  `json:"date_given"`
	DateOrderReceived *time.Time `json:"date_order_received,omitempty"`
	Status            Status     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
}

// NewQuotation creates a pending quotation.
func NewQuotation(quotationName, customerName string, dateGiven time.Time) (*Quotation, error) {
	if quotationName == "" {
		return nil, ErrEmptyName
	}
	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}

	q := &Quotation{
		ID:            uuid.New().String(),
		QuotationName: quotationName,
		CustomerName:  customerName,
		DateGiven:     dateGiven,
		CreatedAt:     time.Now(),
	}
	q.refreshStatus()
	return q, nil
}

// Update applies new attribute values and rederives the status.
func (q *Quotation) Update(quotationName, customerName string, dateGiven time.Time, dateOrderReceived *time.Time) error {
	if quotationName == "" {
		return ErrEmptyName
	}
	if customerName == "" {
		return ErrEmptyCustomerName
	}

	q.QuotationName = quotationName
	q.CustomerName = customerName
	q.DateGiven = dateGiven
	q.DateOrderReceived = dateOrderReceived
	q.refreshStatus()
	return nil
}

// MarkReceived records that the quoted order came in.
func (q *Quotation) MarkReceived(received time.Time) {
	q.DateOrderReceived = &received
	q.refreshStatus()
}

func (q *Quotation) refreshStatus() {
	if q.DateOrderReceived != nil {
		q.Status = StatusReceived
		return
	}
	q.Status = StatusPending
}
