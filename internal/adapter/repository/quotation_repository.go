package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/quotation"
)

var (
	ErrQuotationNotFound = errors.New("quotation not found")
)

// QuotationRepository implements quotation.Repository over PostgreSQL.
type QuotationRepository struct {
	db *pgxpool.Pool
}

// NewQuotationRepository creates a new QuotationRepository.
func NewQuotationRepository(db *pgxpool.Pool) quotation.Repository {
	return &QuotationRepository{db: db}
}

const quotationColumns = `
	id, quotation_name, customer_name, date_given, date_order_received,
	status, created_at`

// Create implements quotation.Repository.Create
func (r *QuotationRepository) Create(ctx context.Context, q *quotation.Quotation) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO quotations (
			id, quotation_name, customer_name, date_given, date_order_received,
			status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		q.ID, q.QuotationName, q.CustomerName, q.DateGiven,
		q.DateOrderReceived, q.Status, q.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create quotation: %w", err)
	}
	return nil
}

// FindByID implements quotation.Repository.FindByID
func (r *QuotationRepository) FindByID(ctx context.Context, id string) (*quotation.Quotation, error) {
	var q quotation.Quotation
	err := r.db.QueryRow(ctx,
		`SELECT `+quotationColumns+` FROM quotations WHERE id = $1`, id).Scan(
		&q.ID, &q.QuotationName, &q.CustomerName, &q.DateGiven,
		&q.DateOrderReceived, &q.Status, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuotationNotFound
		}
		return nil, fmt.Errorf("failed to fetch quotation: %w", err)
	}
	return &q, nil
}

// List implements quotation.Repository.List
func (r *QuotationRepository) List(ctx context.Context, limit, offset int) ([]*quotation.Quotation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+quotationColumns+` FROM quotations ORDER BY date_given DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	defer rows.Close()

	var quotations []*quotation.Quotation
	for rows.Next() {
		var q quotation.Quotation
		err := rows.Scan(
			&q.ID, &q.QuotationName, &q.CustomerName, &q.DateGiven,
			&q.DateOrderReceived, &q.Status, &q.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quotation: %w", err)
		}
		quotations = append(quotations, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quotations: %w", err)
	}
	return quotations, nil
}

// Update implements quotation.Repository.Update
func (r *QuotationRepository) Update(ctx context.Context, q *quotation.Quotation) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE quotations SET
			quotation_name = $2, customer_name = $3, date_given = $4,
			date_order_received = $5, status = $6
		WHERE id = $1`,
		q.ID, q.QuotationName, q.CustomerName, q.DateGiven,
		q.DateOrderReceived, q.Status)
	if err != nil {
		return fmt.Errorf("failed to update quotation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotationNotFound
	}
	return nil
}

// Delete implements quotation.Repository.Delete
func (r *QuotationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM quotations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quotation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotationNotFound
	}
	return nil
}

// Count implements quotation.Repository.Count
func (r *QuotationRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM quotations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count quotations: %w", err)
	}
	return count, nil
}

// CountByStatus implements quotation.Repository.CountByStatus
func (r *QuotationRepository) CountByStatus(ctx context.Context, status quotation.Status) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM quotations WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count quotations by status: %w", err)
	}
	return count, nil
}

// DeleteAll implements quotation.Repository.DeleteAll
func (r *QuotationRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM quotations`); err != nil {
		return fmt.Errorf("failed to reset quotations: %w", err)
	}
	return nil
}
