package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/billing"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/product"
)

var (
	ErrNoItems            = errors.New("sale must have at least one item")
	ErrEmptyCustomerName  = errors.New("customer name cannot be empty")
	ErrEmptyCustomerPhone = errors.New("customer phone cannot be empty")
	ErrInvalidQuantity    = errors.New("item quantity must be positive")
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
	ErrNegativePayment    = errors.New("payment amounts cannot be negative")
	ErrNegativeTransport  = errors.New("transport amount cannot be negative")
)

// PaymentMode describes how the customer settles the invoice.
type PaymentMode string

const (
	PaymentModeFull    PaymentMode = "full"
	PaymentModePartial PaymentMode = "partial"
	PaymentModeAdvance PaymentMode = "advance"
	PaymentModePending PaymentMode = "pending"
)

// PaymentMethod is the settlement channel.
type PaymentMethod string

const (
	PaymentMethodBanking PaymentMethod = "Banking"
	PaymentMethodNEFT    PaymentMethod = "NEFT"
	PaymentMethodRTGS    PaymentMethod = "RTGS"
	PaymentMethodCash    PaymentMethod = "Cash"
	PaymentMethodUPI     PaymentMethod = "UPI"
)

// Status is derived from the balance due.
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPartial Status = "Partial"
	StatusPending Status = "Pending"
)

// Customer is the buyer snapshot embedded in a sale.
type Customer struct {
	Name        string `json:"name"`
	CompanyName string `json:"company_name,omitempty"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address"`
	GSTIN       string `json:"gstin,omitempty"`
	State       string `json:"state,omitempty"`
	StateCode   string `json:"state_code,omitempty"`
}

// Item is an immutable snapshot of a product at the time of sale. It does
// not track later changes to the product, and ProductID is a weak reference.
type Item struct {
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	HSNCode       string  `json:"hsn_code,omitempty"`
	WoodType      string  `json:"wood_type"`
	Dimensions    string  `json:"dimensions"`
	Quantity      int     `json:"quantity"`
	CftPerPiece   float64 `json:"cft_per_piece"`
	TotalCft      float64 `json:"total_cft"`
	PricePerPiece float64 `json:"price_per_piece"`
	Amount        float64 `json:"amount"`
}

// NewItem snapshots a product into a sale line.
func NewItem(p *product.Product, quantity int) (Item, error) {
	if quantity <= 0 {
		return Item{}, ErrInvalidQuantity
	}

	qty := decimal.NewFromInt(int64(quantity))
	amount := billing.RoundMoney(decimal.NewFromFloat(p.PricePerPiece).Mul(qty))
	amountF, _ := amount.Float64()

	return Item{
		ProductID:     p.ID,
		ProductName:   p.Name,
		HSNCode:       product.HSNForCategory(p.Category),
		WoodType:      string(p.WoodType),
		Dimensions:    p.Dimensions(),
		Quantity:      quantity,
		CftPerPiece:   p.CftPerPiece,
		TotalCft:      p.CftPerPiece * float64(quantity),
		PricePerPiece: p.PricePerPiece,
		Amount:        amountF,
	}, nil
}

// Sale is an invoice-backed transaction. Items and totals are immutable
// after creation; only the payment fields change, through RecordPayment.
type Sale struct {
	ID            string   `json:"id"`
	InvoiceNumber string   `json:"invoice_number"`
	Customer      Customer `json:"customer"`
	Items         []Item   `json:"items"`
	Subtotal      float64  `json:"subtotal"`

	GSTEnabled    bool    `json:"gst_enabled"`
	GSTRate       int     `json:"gst_rate,omitempty"`
	GSTAmount     float64 `json:"gst_amount"`
	CGSTAmount    float64 `json:"cgst_amount,omitempty"`
	SGSTAmount    float64 `json:"sgst_amount,omitempty"`
	IGSTAmount    float64 `json:"igst_amount,omitempty"`
	IsInterState  bool    `json:"is_inter_state,omitempty"`
	PlaceOfSupply string  `json:"place_of_supply,omitempty"`

	TransportEnabled bool    `json:"transport_enabled"`
	TransportAmount  float64 `json:"transport_amount"`
	VehicleNumber    string  `json:"vehicle_number,omitempty"`

	GrandTotal float64 `json:"grand_total"`

	PaymentMode         PaymentMode   `json:"payment_mode"`
	PaymentMethod       PaymentMethod `json:"payment_method"`
	AmountPaid          float64       `json:"amount_paid"`
	AdvanceAmount       float64       `json:"advance_amount"`
	BalanceDue          float64       `json:"balance_due"`
	ExpectedPaymentDate *time.Time    `json:"expected_payment_date,omitempty"`

	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Input carries the caller-supplied fields for a new sale.
type Input struct {
	Customer            Customer
	Items               []Item
	GSTEnabled          bool
	GSTRate             int
	IsInterState        bool
	PlaceOfSupply       string
	TransportEnabled    bool
	TransportAmount     float64
	VehicleNumber       string
	PaymentMode         PaymentMode
	PaymentMethod       PaymentMethod
	AmountPaid          float64
	AdvanceAmount       float64
	ExpectedPaymentDate *time.Time
}

// NewSale validates the input and computes subtotal, GST breakdown, grand
// total and the derived payment status. The invoice number is assigned later
// by the repository from the per-month sequence.
func NewSale(in Input) (*Sale, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}
	if in.Customer.Name == "" {
		return nil, ErrEmptyCustomerName
	}
	if in.Customer.Phone == "" {
		return nil, ErrEmptyCustomerPhone
	}
	switch in.PaymentMode {
	case PaymentModeFull, PaymentModePartial, PaymentModeAdvance, PaymentModePending:
	default:
		return nil, ErrInvalidPaymentMode
	}
	if in.AmountPaid < 0 || in.AdvanceAmount < 0 {
		return nil, ErrNegativePayment
	}
	if in.TransportEnabled && in.TransportAmount < 0 {
		return nil, ErrNegativeTransport
	}

	subtotal := decimal.Zero
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		subtotal = subtotal.Add(decimal.NewFromFloat(item.Amount))
	}
	subtotal = billing.RoundMoney(subtotal)

	s := &Sale{
		ID:                  uuid.New().String(),
		Customer:            in.Customer,
		Items:               in.Items,
		GSTEnabled:          in.GSTEnabled,
		IsInterState:        in.IsInterState,
		PlaceOfSupply:       in.PlaceOfSupply,
		TransportEnabled:    in.TransportEnabled,
		VehicleNumber:       in.VehicleNumber,
		PaymentMode:         in.PaymentMode,
		PaymentMethod:       in.PaymentMethod,
		AmountPaid:          in.AmountPaid,
		AdvanceAmount:       in.AdvanceAmount,
		ExpectedPaymentDate: in.ExpectedPaymentDate,
		CreatedAt:           time.Now(),
	}
	s.Subtotal, _ = subtotal.Float64()

	gst := decimal.Zero
	if in.GSTEnabled {
		rate := in.GSTRate
		if rate == 0 {
			rate = billing.GSTRate18
		}
		breakdown, err := billing.SplitGST(subtotal, rate, in.IsInterState)
		if err != nil {
			return nil, err
		}
		gst = breakdown.Total
		s.GSTRate = breakdown.Rate
		s.GSTAmount, _ = breakdown.Total.Float64()
		if in.IsInterState {
			s.IGSTAmount, _ = breakdown.IGST.Float64()
		} else {
			s.CGSTAmount, _ = breakdown.CGST.Float64()
			s.SGSTAmount, _ = breakdown.SGST.Float64()
		}
	}

	transport := decimal.Zero
	if in.TransportEnabled {
		transport = billing.RoundMoney(decimal.NewFromFloat(in.TransportAmount))
		s.TransportAmount, _ = transport.Float64()
	}

	grand := billing.RoundMoney(subtotal.Add(gst).Add(transport))
	s.GrandTotal, _ = grand.Float64()

	s.recomputeBalance()
	return s, nil
}

// RecordPayment overwrites the paid amount and recomputes the balance due
// and status.
func (s *Sale) RecordPayment(amountPaid float64) error {
	if amountPaid < 0 {
		return ErrNegativePayment
	}
	s.AmountPaid = amountPaid
	s.recomputeBalance()
	return nil
}

// recomputeBalance keeps balanceDue = grandTotal - amountPaid - advanceAmount
// and the tri-state status in sync.
func (s *Sale) recomputeBalance() {
	balance := billing.RoundMoney(decimal.NewFromFloat(s.GrandTotal).
		Sub(decimal.NewFromFloat(s.AmountPaid)).
		Sub(decimal.NewFromFloat(s.AdvanceAmount)))
	s.BalanceDue, _ = balance.Float64()

	switch {
	case !balance.IsPositive():
		s.Status = StatusPaid
	case s.AmountPaid > 0 || s.AdvanceAmount > 0:
		s.Status = StatusPartial
	default:
		s.Status = StatusPending
	}
}
