package dto

import (
	"time"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/sale"
)

// SaleCustomerRequest carries the buyer details for a new sale.
type SaleCustomerRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	CompanyName string `json:"company_name" binding:"max=200"`
	Phone       string `json:"phone" binding:"required,max=20"`
	Email       string `json:"email" binding:"max=200"`
	Address     string `json:"address" binding:"max=500"`
	GSTIN       string `json:"gstin" binding:"max=15"`
	State       string `json:"state" binding:"max=100"`
	StateCode   string `json:"state_code" binding:"max=2"`
}

// SaleItemRequest references a product and the quantity sold.
type SaleItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// SaleRequest carries the data to register a sale.
type SaleRequest struct {
	Customer            SaleCustomerRequest `json:"customer" binding:"required"`
	Items               []SaleItemRequest   `json:"items" binding:"required,min=1"`
	GSTEnabled          bool                `json:"gst_enabled"`
	GSTRate             int                 `json:"gst_rate"`
	IsInterState        bool                `json:"is_inter_state"`
	PlaceOfSupply       string              `json:"place_of_supply" binding:"max=100"`
	TransportEnabled    bool                `json:"transport_enabled"`
	TransportAmount     float64             `json:"transport_amount" binding:"gte=0"`
	VehicleNumber       string              `json:"vehicle_number" binding:"max=20"`
	PaymentMode         sale.PaymentMode    `json:"payment_mode" binding:"required"`
	PaymentMethod       sale.PaymentMethod  `json:"payment_method"`
	AmountPaid          float64             `json:"amount_paid" binding:"gte=0"`
	AdvanceAmount       float64             `json:"advance_amount" binding:"gte=0"`
	ExpectedPaymentDate *time.Time          `json:"expected_payment_date"`
}

// PaymentUpdateRequest carries a payment update against an existing sale.
type PaymentUpdateRequest struct {
	AmountPaid float64 `json:"amount_paid" binding:"gte=0"`
}

// SaleItemResponse is the line item representation returned by the API.
type SaleItemResponse struct {
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

// SaleResponse is the sale representation returned by the API.
type SaleResponse struct {
	ID                  string             `json:"id"`
	InvoiceNumber       string             `json:"invoice_number"`
	Customer            sale.Customer      `json:"customer"`
	Items               []SaleItemResponse `json:"items"`
	Subtotal            float64            `json:"subtotal"`
	GSTEnabled          bool               `json:"gst_enabled"`
	GSTRate             int                `json:"gst_rate,omitempty"`
	GSTAmount           float64            `json:"gst_amount"`
	CGSTAmount          float64            `json:"cgst_amount,omitempty"`
	SGSTAmount          float64            `json:"sgst_amount,omitempty"`
	IGSTAmount          float64            `json:"igst_amount,omitempty"`
	IsInterState        bool               `json:"is_inter_state,omitempty"`
	PlaceOfSupply       string             `json:"place_of_supply,omitempty"`
	TransportEnabled    bool               `json:"transport_enabled"`
	TransportAmount     float64            `json:"transport_amount"`
	VehicleNumber       string             `json:"vehicle_number,omitempty"`
	GrandTotal          float64            `json:"grand_total"`
	PaymentMode         sale.PaymentMode   `json:"payment_mode"`
	PaymentMethod       sale.PaymentMethod `json:"payment_method"`
	AmountPaid          float64            `json:"amount_paid"`
	AdvanceAmount       float64            `json:"advance_amount"`
	BalanceDue          float64            `json:"balance_due"`
	ExpectedPaymentDate *time.Time         `json:"expected_payment_date,omitempty"`
	Status              sale.Status        `json:"status"`
	CreatedAt           time.Time          `json:"created_at"`
}

// SaleListResponse is a paginated list of sales.
type SaleListResponse struct {
	Items      []SaleResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToSaleResponse converts a domain sale into its API representation.
func ToSaleResponse(s *sale.Sale) *SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID:     it.ProductID,
			ProductName:   it.ProductName,
			HSNCode:       it.HSNCode,
			WoodType:      it.WoodType,
			Dimensions:    it.Dimensions,
			Quantity:      it.Quantity,
			CftPerPiece:   it.CftPerPiece,
			TotalCft:      it.TotalCft,
			PricePerPiece: it.PricePerPiece,
			Amount:        it.Amount,
		})
	}

	return &SaleResponse{
		ID:                  s.ID,
		InvoiceNumber:       s.InvoiceNumber,
		Customer:            s.Customer,
		Items:               items,
		Subtotal:            s.Subtotal,
		GSTEnabled:          s.GSTEnabled,
		GSTRate:             s.GSTRate,
		GSTAmount:           s.GSTAmount,
		CGSTAmount:          s.CGSTAmount,
		SGSTAmount:          s.SGSTAmount,
		IGSTAmount:          s.IGSTAmount,
		IsInterState:        s.IsInterState,
		PlaceOfSupply:       s.PlaceOfSupply,
		TransportEnabled:    s.TransportEnabled,
		TransportAmount:     s.TransportAmount,
		VehicleNumber:       s.VehicleNumber,
		GrandTotal:          s.GrandTotal,
		PaymentMode:         s.PaymentMode,
		PaymentMethod:       s.PaymentMethod,
		AmountPaid:          s.AmountPaid,
		AdvanceAmount:       s.AdvanceAmount,
		BalanceDue:          s.BalanceDue,
		ExpectedPaymentDate: s.ExpectedPaymentDate,
		Status:              s.Status,
		CreatedAt:           s.CreatedAt,
	}
}

// ToSaleListResponse converts a page of sales into the list response.
func ToSaleListResponse(sales []*sale.Sale, total, page, size, totalPages int) *SaleListResponse {
	items := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *ToSaleResponse(s))
	}

	return &SaleListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}
