package quotation

import (
	"context"
)

// Repository defines the persistence operations for quotations.
type Repository interface {
	// Create stores a new quotation
	Create(ctx context.Context, q *Quotation) error

	// FindByID fetches a quotation by its id
	FindByID(ctx context.Context, id string) (*Quotation, error)

	// List returns quotations ordered by date given descending
	List(ctx context.Context, limit, offset int) ([]*Quotation, error)

	// Update persists changed attributes
	Update(ctx context.Context, q *Quotation) error

	// Delete removes a quotation
	Delete(ctx context.Context, id string) error

	// Count returns the number of quotations, optionally by status
	Count(ctx context.Context) (int, error)

	// CountByStatus counts quotations with the given status
	CountByStatus(ctx context.Context, status Status) (int, error)

	// DeleteAll clears all quotations (admin reset)
	DeleteAll(ctx context.Context) error
}
