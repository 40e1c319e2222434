package dto

import (
	"time"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/product"
)

// ProductRequest carries the data to create or update a product.
type ProductRequest struct {
	Name             string           `json:"name" binding:"required,max=200"`
	Category         string           `json:"category" binding:"required,max=100"`
	WoodType         product.WoodType `json:"wood_type" binding:"required"`
	Length           float64          `json:"length" binding:"required,gt=0"`
	Width            float64          `json:"width" binding:"required,gt=0"`
	Height           float64          `json:"height" binding:"required,gt=0"`
	PricePerCft      float64          `json:"price_per_cft" binding:"required,gt=0"`
	Quantity         int              `json:"quantity" binding:"gte=0"`
	MinOrderQuantity int              `json:"min_order_quantity" binding:"required,gte=1"`
	Notes            string           `json:"notes" binding:"max=2000"`
}

// ProductResponse is the product representation returned by the API.
type ProductResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Category         string              `json:"category"`
	HSNCode          string              `json:"hsn_code"`
	WoodType         product.WoodType    `json:"wood_type"`
	Length           float64             `json:"length"`
	Width            float64             `json:"width"`
	Height           float64             `json:"height"`
	PricePerCft      float64             `json:"price_per_cft"`
	CftPerPiece      float64             `json:"cft_per_piece"`
	PricePerPiece    float64             `json:"price_per_piece"`
	Quantity         int                 `json:"quantity"`
	MinOrderQuantity int                 `json:"min_order_quantity"`
	Notes            string              `json:"notes"`
	Status           product.StockStatus `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// ProductListResponse is a paginated list of products.
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// CategoriesResponse lists the catalog categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ToProductResponse converts a domain product into its API representation.
func ToProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Category:         p.Category,
		HSNCode:          product.HSNForCategory(p.Category),
		WoodType:         p.WoodType,
		Length:           p.Length,
		Width:            p.Width,
		Height:           p.Height,
		PricePerCft:      p.PricePerCft,
		CftPerPiece:      p.CftPerPiece,
		PricePerPiece:    p.PricePerPiece,
		Quantity:         p.Quantity,
		MinOrderQuantity: p.MinOrderQuantity,
		Notes:            p.Notes,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ToProductListResponse converts a page of products into the list response.
func ToProductListResponse(products []*product.Product, total, page, size, totalPages int) *ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *ToProductResponse(p))
	}

	return &ProductListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}
