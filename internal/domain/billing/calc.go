package billing

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidGSTRate   = errors.New("gst rate must be 12 or 18")
	ErrInvalidDimension = errors.New("dimensions must be positive")
)

// GST rates permitted on invoices
const (
	GSTRate12 = 12
	GSTRate18 = 18
)

// cubicInchesPerCFT converts cubic inches to cubic feet (12³).
const cubicInchesPerCFT = 1728.0

// CubicFeet returns the volume of a piece in CFT. Dimensions are in inches;
// the divisor 1728 = 12³ converts cubic inches to cubic feet.
func CubicFeet(length, width, height float64) (float64, error) {
	if length <= 0 || width <= 0 || height <= 0 {
		return 0, ErrInvalidDimension
	}
	return (length * width * height) / cubicInchesPerCFT, nil
}

// RoundMoney rounds an amount to two decimal places (paise).
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// GSTBreakdown holds the tax amounts for a sale. For inter-state supply only
// IGST is set; for intra-state supply CGST and SGST are set and always sum
// back to Total exactly.
type GSTBreakdown struct {
	Rate       int
	InterState bool
	Total      decimal.Decimal
	CGST       decimal.Decimal
	SGST       decimal.Decimal
	IGST       decimal.Decimal
}

// SplitGST computes the GST due on a taxable value. The total is rounded to
// the paise first and the halves derived from it, so CGST+SGST reconstructs
// the total without drift.
func SplitGST(subtotal decimal.Decimal, rate int, interState bool) (GSTBreakdown, error) {
	if rate != GSTRate12 && rate != GSTRate18 {
		return GSTBreakdown{}, ErrInvalidGSTRate
	}

	total := RoundMoney(subtotal.Mul(decimal.NewFromInt(int64(rate))).Div(decimal.NewFromInt(100)))

	b := GSTBreakdown{
		Rate:       rate,
		InterState: interState,
		Total:      total,
	}

	if interState {
		b.IGST = total
		return b, nil
	}

	half := total.Div(decimal.NewFromInt(2)).RoundDown(2)
	b.CGST = half
	b.SGST = total.Sub(half)
	return b, nil
}

// InvoiceNumber formats an invoice number as SSF{YY}{MM}{seq}, where seq is
// the per-month sequence issued by the sale repository.
func InvoiceNumber(issuedAt time.Time, seq int) string {
	return fmt.Sprintf("SSF%02d%02d%04d", issuedAt.Year()%100, int(issuedAt.Month()), seq)
}

// YearMonth returns the counter key for an issue date, e.g. "2602" for
// February 2026.
func YearMonth(issuedAt time.Time) string {
	return fmt.Sprintf("%02d%02d", issuedAt.Year()%100, int(issuedAt.Month()))
}
