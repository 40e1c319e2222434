package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/product"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository implements product.Repository over PostgreSQL.
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{db: db}
}

const productColumns = `
	id, name, category, wood_type, length, width, height, price_per_cft,
	cft_per_piece, price_per_piece, quantity, min_order_quantity, notes,
	status, created_at, updated_at`

// Create implements product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, name, category, wood_type, length, width, height, price_per_cft,
			cft_per_piece, price_per_piece, quantity, min_order_quantity, notes,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		p.ID, p.Name, p.Category, p.WoodType, p.Length, p.Width, p.Height,
		p.PricePerCft, p.CftPerPiece, p.PricePerPiece, p.Quantity,
		p.MinOrderQuantity, p.Notes, p.Status, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID implements product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return p, nil
}

// List implements product.Repository.List
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY name ASC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// ListByStatus implements product.Repository.ListByStatus
func (r *ProductRepository) ListByStatus(ctx context.Context, status product.StockStatus, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE status = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`,
		status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by status: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// Update implements product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $2, category = $3, wood_type = $4, length = $5, width = $6,
			height = $7, price_per_cft = $8, cft_per_piece = $9,
			price_per_piece = $10, quantity = $11, min_order_quantity = $12,
			notes = $13, status = $14, updated_at = $15
		WHERE id = $1`,
		p.ID, p.Name, p.Category, p.WoodType, p.Length, p.Width, p.Height,
		p.PricePerCft, p.CftPerPiece, p.PricePerPiece, p.Quantity,
		p.MinOrderQuantity, p.Notes, p.Status, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete implements product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Count implements product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// CountByStatus implements product.Repository.CountByStatus
func (r *ProductRepository) CountByStatus(ctx context.Context, status product.StockStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products by status: %w", err)
	}
	return count, nil
}

// DeleteAll implements product.Repository.DeleteAll
func (r *ProductRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("failed to reset products: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.WoodType, &p.Length, &p.Width,
		&p.Height, &p.PricePerCft, &p.CftPerPiece, &p.PricePerPiece,
		&p.Quantity, &p.MinOrderQuantity, &p.Notes, &p.Status,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProductRows(rows pgx.Rows) ([]*product.Product, error) {
	var products []*product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}
