package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/billing"
)

var (
	ErrEmptyName          = errors.New("product name cannot be empty")
	ErrInvalidWoodType    = errors.New("invalid wood type")
	ErrInvalidDimensions  = errors.New("dimensions must be positive")
	ErrInvalidPrice       = errors.New("price per cft must be positive")
	ErrNegativeQuantity   = errors.New("quantity cannot be negative")
	ErrInvalidMinOrderQty = errors.New("minimum order quantity must be at least 1")
)

// WoodType is the raw material of a product.
type WoodType string

const (
	WoodTypeJungle WoodType = "Jungle Wood"
	WoodTypePine   WoodType = "Pine Wood"
	WoodTypeCustom WoodType = "Custom"
)

// StockStatus is derived from quantity against the minimum order quantity.
type StockStatus string

const (
	StatusInStock    StockStatus = "In Stock"
	StatusLowStock   StockStatus = "Low Stock"
	StatusOutOfStock StockStatus = "Out of Stock"
)

// Categories lists the catalog categories offered by the business.
var Categories = []string{
	"Industrial Wooden Pallets",
	"EURO 2-Way Pallets",
	"EURO 4-Way Pallets",
	"CP1 Pallets",
	"CP2 Pallets",
	"CP3 Pallets",
	"CP4 Pallets",
	"CP5 Pallets",
	"CP6 Pallets",
	"CP7 Pallets",
	"CP8 Pallets",
	"CP9 Pallets",
	"Wooden Boxes",
	"Wooden Tables",
	"Wooden Crates",
	"Custom Wooden Products",
	"Industrial Wood Packaging",
	"Jungle Wood Products",
	"Pine Wood Products",
}

// hsnCodes maps a category to its HSN tax classification code.
var hsnCodes = map[string]string{
	"Wooden Tables":          "9403",
	"Custom Wooden Products": "4421",
	"Jungle Wood Products":   "4421",
	"Pine Wood Products":     "4421",
}

// HSNForCategory returns the HSN code for a category. Pallets, boxes and
// crates all fall under 4415.
func HSNForCategory(category string) string {
	if code, ok := hsnCodes[category]; ok {
		return code
	}
	return "4415"
}

// ClassifyStock derives the stock status from a quantity and the minimum
// order quantity: out of stock at zero, low stock up to twice the minimum.
func ClassifyStock(quantity, minOrder int) StockStatus {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= minOrder*2:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Product represents a catalog item. Dimensions are in inches. CftPerPiece,
// PricePerPiece and Status are derived and only ever set by Recalculate.
type Product struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Category         string      `json:"category"`
	WoodType         WoodType    `json:"wood_type"`
	Length           float64     `json:"length"`
	Width            float64     `json:"width"`
	Height           float64     `json:"height"`
	PricePerCft      float64     `json:"price_per_cft"`
	CftPerPiece      float64     `json:"cft_per_piece"`
	PricePerPiece    float64     `json:"price_per_piece"`
	Quantity         int         `json:"quantity"`
	MinOrderQuantity int         `json:"min_order_quantity"`
	Notes            string      `json:"notes"`
	Status           StockStatus `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// NewProduct creates a product and computes its derived fields.
func NewProduct(name, category string, woodType WoodType, length, width, height, pricePerCft float64, quantity, minOrderQuantity int, notes string) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if woodType != WoodTypeJungle && woodType != WoodTypePine && woodType != WoodTypeCustom {
		return nil, ErrInvalidWoodType
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if minOrderQuantity < 1 {
		return nil, ErrInvalidMinOrderQty
	}

	now := time.Now()
	p := &Product{
		ID:               uuid.New().String(),
		Name:             name,
		Category:         category,
		WoodType:         woodType,
		Length:           length,
		Width:            width,
		Height:           height,
		PricePerCft:      pricePerCft,
		Quantity:         quantity,
		MinOrderQuantity: minOrderQuantity,
		Notes:            notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := p.Recalculate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Recalculate recomputes CftPerPiece, PricePerPiece and Status from the
// current dimensions, price and quantity.
func (p *Product) Recalculate() error {
	if p.PricePerCft <= 0 {
		return ErrInvalidPrice
	}

	cft, err := billing.CubicFeet(p.Length, p.Width, p.Height)
	if err != nil {
		return ErrInvalidDimensions
	}
	p.CftPerPiece = cft

	price := billing.RoundMoney(decimal.NewFromFloat(cft).Mul(decimal.NewFromFloat(p.PricePerCft)))
	p.PricePerPiece, _ = price.Float64()

	p.Status = ClassifyStock(p.Quantity, p.MinOrderQuantity)
	p.UpdatedAt = time.Now()
	return nil
}

// Update applies new attribute values and recomputes the derived fields.
func (p *Product) Update(name, category string, woodType WoodType, length, width, height, pricePerCft float64, quantity, minOrderQuantity int, notes string) error {
	if name == "" {
		return ErrEmptyName
	}
	if woodType != WoodTypeJungle && woodType != WoodTypePine && woodType != WoodTypeCustom {
		return ErrInvalidWoodType
	}
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if minOrderQuantity < 1 {
		return ErrInvalidMinOrderQty
	}

	p.Name = name
	p.Category = category
	p.WoodType = woodType
	p.Length = length
	p.Width = width
	p.Height = height
	p.PricePerCft = pricePerCft
	p.Quantity = quantity
	p.MinOrderQuantity = minOrderQuantity
	p.Notes = notes

	return p.Recalculate()
}

// Dimensions renders the piece dimensions for sale item snapshots,
// e.g. "48 x 40 x 6 in".
func (p *Product) Dimensions() string {
	return formatDimension(p.Length) + " x " + formatDimension(p.Width) + " x " + formatDimension(p.Height) + " in"
}

func formatDimension(v float64) string {
	d := decimal.NewFromFloat(v)
	if d.Equal(d.Truncate(0)) {
		return d.StringFixed(0)
	}
	return d.String()
}
