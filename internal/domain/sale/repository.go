package sale

import (
	"context"
)

// Stats aggregates the figures shown on the dashboard and revenue pages.
type Stats struct {
	TotalSales      int     `json:"total_sales"`
	PendingPayments int     `json:"pending_payments"`
	TotalRevenue    float64 `json:"total_revenue"`
	ReceivedAmount  float64 `json:"received_amount"`
	PendingAmount   float64 `json:"pending_amount"`
}

// Repository defines the persistence operations for sales. Create must run
// the stock decrement, invoice sequence and sale insert in a single
// transaction: a failed decrement (insufficient stock) aborts the whole sale.
type Repository interface {
	// Create assigns the invoice number, decrements product stock and
	// persists the sale atomically
	Create(ctx context.Context, s *Sale) error

	// FindByID fetches a sale by its id
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List returns sales ordered by creation date descending
	List(ctx context.Context, limit, offset int) ([]*Sale, error)

	// ListByStatus returns sales with the given payment status
	ListByStatus(ctx context.Context, status Status, limit, offset int) ([]*Sale, error)

	// UpdatePayment persists the recomputed payment fields of a sale
	UpdatePayment(ctx context.Context, s *Sale) error

	// CountByStatus counts sales with the given payment status
	CountByStatus(ctx context.Context, status Status) (int, error)

	// Stats computes the dashboard aggregates
	Stats(ctx context.Context) (*Stats, error)

	// DeleteAll clears all sales (admin reset)
	DeleteAll(ctx context.Context) error
}
