package dto

// DashboardResponse aggregates the figures shown on the dashboard.
type DashboardResponse struct {
	TotalSales      int     `json:"total_sales"`
	PendingPayments int     `json:"pending_payments"`
	TotalRevenue    float64 `json:"total_revenue"`
	ReceivedAmount  float64 `json:"received_amount"`
	PendingAmount   float64 `json:"pending_amount"`

	TotalProducts    int `json:"total_products"`
	LowStockProducts int `json:"low_stock_products"`

	TotalQuotations   int `json:"total_quotations"`
	PendingQuotations int `json:"pending_quotations"`
}
