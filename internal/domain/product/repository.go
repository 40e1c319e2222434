package product

import (
	"context"
)

// Repository defines the persistence operations for products.
type Repository interface {
	// Create stores a new product
	Create(ctx context.Context, p *Product) error

	// FindByID fetches a product by its id
	FindByID(ctx context.Context, id string) (*Product, error)

	// List returns products ordered by name with pagination
	List(ctx context.Context, limit, offset int) ([]*Product, error)

	// ListByStatus returns products with the given stock status
	ListByStatus(ctx context.Context, status StockStatus, limit, offset int) ([]*Product, error)

	// Update persists changed attributes and derived fields
	Update(ctx context.Context, p *Product) error

	// Delete removes a product
	Delete(ctx context.Context, id string) error

	// Count returns the catalog size
	Count(ctx context.Context) (int, error)

	// CountByStatus counts products with the given stock status
	CountByStatus(ctx context.Context, status StockStatus) (int, error)

	// DeleteAll clears the catalog (admin reset)
	DeleteAll(ctx context.Context) error
}
