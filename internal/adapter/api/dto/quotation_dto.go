package dto

import (
	"time"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/quotation"
)

// QuotationRequest carries the data to create or update a quotation.
type QuotationRequest struct {
	QuotationName     string     `json:"quotation_name" binding:"required,max=200"`
	CustomerName      string     `json:"customer_name" binding:"required,max=200"`
	DateGiven         time.Time  `json:"date_given" binding:"required"`
	DateOrderReceived *time.Time `json:"date_order_received"`
}

// QuotationResponse is the quotation representation returned by the API.
type QuotationResponse struct {
	ID                string           `json:"id"`
	QuotationName     string           `json:"quotation_name"`
	CustomerName      string           `json:"customer_name"`
	DateGiven         time.Time        `json:"date_given"`
	DateOrderReceived *time.Time       `json:"date_order_received,omitempty"`
	Status            quotation.Status `json:"status"`
	CreatedAt         time.Time        `json:"created_at"`
}

// QuotationListResponse is a paginated list of quotations.
type QuotationListResponse struct {
	Items      []QuotationResponse `json:"items"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	Size       int                 `json:"size"`
	TotalPages int                 `json:"total_pages"`
}

// ToQuotationResponse converts a domain quotation into its API representation.
func ToQuotationResponse(q *quotation.Quotation) *QuotationResponse {
	return &QuotationResponse{
		ID:                q.ID,
		QuotationName:     q.QuotationName,
		CustomerName:      q.CustomerName,
		DateGiven:         q.DateGiven,
		DateOrderReceived: q.DateOrderReceived,
		Status:            q.Status,
		CreatedAt:         q.CreatedAt,
	}
}

// ToQuotationListResponse converts a page of quotations into the list response.
func ToQuotationListResponse(quotations []*quotation.Quotation, total, page, size, totalPages int) *QuotationListResponse {
	items := make([]QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		items = append(items, *ToQuotationResponse(q))
	}

	return &QuotationListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}
