package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/billing"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/sale"
)

var (
	ErrSaleNotFound      = errors.New("sale not found")
	ErrInsufficientStock = errors.New("insufficient stock for sale item")
)

// SaleRepository implements sale.Repository over PostgreSQL.
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository creates a new SaleRepository.
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{db: db}
}

const saleColumns = `
	id, invoice_number, customer, items, subtotal, gst_enabled, gst_rate,
	gst_amount, cgst_amount, sgst_amount, igst_amount, is_inter_state,
	place_of_supply, transport_enabled, transport_amount, vehicle_number,
	grand_total, payment_mode, payment_method, amount_paid, advance_amount,
	balance_due, expected_payment_date, status, created_at`

// Create implements sale.Repository.Create. Stock decrement, invoice
// sequencing and the sale insert run in one transaction; the decrement is
// guarded so over-selling aborts the sale instead of driving stock negative.
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin sale transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, item := range s.Items {
		tag, err := tx.Exec(ctx,
			`UPDATE products SET
				quantity = quantity - $2,
				status = CASE
					WHEN quantity - $2 = 0 THEN 'Out of Stock'
					WHEN quantity - $2 <= min_order_quantity * 2 THEN 'Low Stock'
					ELSE 'In Stock'
				END,
				updated_at = NOW()
			WHERE id = $1 AND quantity >= $2`,
			item.ProductID, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: product %s", ErrInsufficientStock, item.ProductID)
		}
	}

	// Per-month invoice sequence, then the format SSF{YY}{MM}{seq}.
	var seq int
	err = tx.QueryRow(ctx,
		`INSERT INTO invoice_counters (year_month, seq) VALUES ($1, 1)
		ON CONFLICT (year_month) DO UPDATE SET seq = invoice_counters.seq + 1
		RETURNING seq`,
		billing.YearMonth(s.CreatedAt)).Scan(&seq)
	if err != nil {
		return fmt.Errorf("failed to advance invoice sequence: %w", err)
	}
	s.InvoiceNumber = billing.InvoiceNumber(s.CreatedAt, seq)

	customerJSON, err := json.Marshal(s.Customer)
	if err != nil {
		return fmt.Errorf("failed to encode customer: %w", err)
	}
	itemsJSON, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("failed to encode sale items: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO sales (
			id, invoice_number, customer, items, subtotal, gst_enabled, gst_rate,
			gst_amount, cgst_amount, sgst_amount, igst_amount, is_inter_state,
			place_of_supply, transport_enabled, transport_amount, vehicle_number,
			grand_total, payment_mode, payment_method, amount_paid, advance_amount,
			balance_due, expected_payment_date, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)`,
		s.ID, s.InvoiceNumber, customerJSON, itemsJSON, s.Subtotal,
		s.GSTEnabled, s.GSTRate, s.GSTAmount, s.CGSTAmount, s.SGSTAmount,
		s.IGSTAmount, s.IsInterState, s.PlaceOfSupply, s.TransportEnabled,
		s.TransportAmount, s.VehicleNumber, s.GrandTotal, s.PaymentMode,
		s.PaymentMethod, s.AmountPaid, s.AdvanceAmount, s.BalanceDue,
		s.ExpectedPaymentDate, s.Status, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit sale: %w", err)
	}
	return nil
}

// FindByID implements sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	row := r.db.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)

	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to fetch sale: %w", err)
	}
	return s, nil
}

// List implements sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	return scanSaleRows(rows)
}

// ListByStatus implements sale.Repository.ListByStatus
func (r *SaleRepository) ListByStatus(ctx context.Context, status sale.Status, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales by status: %w", err)
	}
	defer rows.Close()

	return scanSaleRows(rows)
}

// UpdatePayment implements sale.Repository.UpdatePayment
func (r *SaleRepository) UpdatePayment(ctx context.Context, s *sale.Sale) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE sales SET amount_paid = $2, balance_due = $3, status = $4 WHERE id = $1`,
		s.ID, s.AmountPaid, s.BalanceDue, s.Status)
	if err != nil {
		return fmt.Errorf("failed to update sale payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSaleNotFound
	}
	return nil
}

// CountByStatus implements sale.Repository.CountByStatus
func (r *SaleRepository) CountByStatus(ctx context.Context, status sale.Status) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM sales WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sales by status: %w", err)
	}
	return count, nil
}

// Stats implements sale.Repository.Stats
func (r *SaleRepository) Stats(ctx context.Context) (*sale.Stats, error) {
	var st sale.Stats
	err := r.db.QueryRow(ctx,
		`SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status <> 'Paid'),
			COALESCE(SUM(grand_total), 0),
			COALESCE(SUM(amount_paid + advance_amount), 0),
			COALESCE(SUM(balance_due), 0)
		FROM sales`).Scan(
		&st.TotalSales, &st.PendingPayments, &st.TotalRevenue,
		&st.ReceivedAmount, &st.PendingAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sale stats: %w", err)
	}
	return &st, nil
}

// DeleteAll implements sale.Repository.DeleteAll
func (r *SaleRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sales`); err != nil {
		return fmt.Errorf("failed to reset sales: %w", err)
	}
	return nil
}

func scanSale(row pgx.Row) (*sale.Sale, error) {
	var s sale.Sale
	var customerJSON, itemsJSON []byte

	err := row.Scan(
		&s.ID, &s.InvoiceNumber, &customerJSON, &itemsJSON, &s.Subtotal,
		&s.GSTEnabled, &s.GSTRate, &s.GSTAmount, &s.CGSTAmount, &s.SGSTAmount,
		&s.IGSTAmount, &s.IsInterState, &s.PlaceOfSupply, &s.TransportEnabled,
		&s.TransportAmount, &s.VehicleNumber, &s.GrandTotal, &s.PaymentMode,
		&s.PaymentMethod, &s.AmountPaid, &s.AdvanceAmount, &s.BalanceDue,
		&s.ExpectedPaymentDate, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	// Stored records are validated on read; a malformed blob is data
	// corruption, not a silent cast.
	if err := json.Unmarshal(customerJSON, &s.Customer); err != nil {
		return nil, fmt.Errorf("corrupt customer record for sale %s: %w", s.ID, err)
	}
	if err := json.Unmarshal(itemsJSON, &s.Items); err != nil {
		return nil, fmt.Errorf("corrupt items record for sale %s: %w", s.ID, err)
	}
	return &s, nil
}

func scanSaleRows(rows pgx.Rows) ([]*sale.Sale, error) {
	var sales []*sale.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sales: %w", err)
	}
	return sales, nil
}
