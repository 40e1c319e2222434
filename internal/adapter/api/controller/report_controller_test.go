package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/dto"
	quotationdomain "github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/quotation"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/logger"
)

func TestDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	products := newFakeProductRepo()
	sales := newFakeSaleRepo(products)
	quotations := newFakeQuotationRepo()

	p := seedProduct(t, products, 100)

	saleController := NewSaleController(sales, products, logger.NewLogger())
	reportController := NewReportController(sales, products, quotations, logger.NewLogger())

	r := gin.New()
	r.POST("/sales", saleController.Create)
	r.GET("/reports/dashboard", reportController.Dashboard)

	if w := postJSON(t, r, "/sales", saleRequest(p.ID, 2), ""); w.Code != http.StatusCreated {
		t.Fatalf("sale create status = %d; body: %s", w.Code, w.Body.String())
	}

	q, err := quotationdomain.NewQuotation("200 CP1 pallets", "Ravi Traders", time.Now())
	if err != nil {
		t.Fatalf("NewQuotation() unexpected error: %v", err)
	}
	if err := quotations.Create(context.Background(), q); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/reports/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp dto.DashboardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalSales != 1 {
		t.Errorf("TotalSales = %d, want 1", resp.TotalSales)
	}
	if resp.PendingPayments != 1 {
		t.Errorf("PendingPayments = %d, want 1", resp.PendingPayments)
	}
	if resp.TotalRevenue != 1180 {
		t.Errorf("TotalRevenue = %v, want 1180", resp.TotalRevenue)
	}
	if resp.PendingAmount != 1180 {
		t.Errorf("PendingAmount = %v, want 1180", resp.PendingAmount)
	}
	if resp.TotalProducts != 1 {
		t.Errorf("TotalProducts = %d, want 1", resp.TotalProducts)
	}
	if resp.TotalQuotations != 1 || resp.PendingQuotations != 1 {
		t.Errorf("quotations = %d/%d, want 1/1", resp.TotalQuotations, resp.PendingQuotations)
	}
}

func TestExportSalesHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	products := newFakeProductRepo()
	sales := newFakeSaleRepo(products)
	quotations := newFakeQuotationRepo()
	p := seedProduct(t, products, 100)

	saleController := NewSaleController(sales, products, logger.NewLogger())
	reportController := NewReportController(sales, products, quotations, logger.NewLogger())

	r := gin.New()
	r.POST("/sales", saleController.Create)
	r.GET("/reports/sales.xlsx", reportController.ExportSales)

	postJSON(t, r, "/sales", saleRequest(p.ID, 1), "")

	req := httptest.NewRequest(http.MethodGet, "/reports/sales.xlsx", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got == "" {
		t.Error("Content-Disposition header missing")
	}
	if w.Body.Len() == 0 {
		t.Error("empty workbook body")
	}
}

func TestReset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	products := newFakeProductRepo()
	sales := newFakeSaleRepo(products)
	quotations := newFakeQuotationRepo()
	p := seedProduct(t, products, 100)

	saleController := NewSaleController(sales, products, logger.NewLogger())
	resetController := NewResetController(sales, quotations, products, logger.NewLogger())

	r := gin.New()
	r.POST("/sales", saleController.Create)
	r.POST("/reset", resetController.Reset)

	postJSON(t, r, "/sales", saleRequest(p.ID, 1), "")

	q, err := quotationdomain.NewQuotation("200 CP1 pallets", "Ravi Traders", time.Now())
	if err != nil {
		t.Fatalf("NewQuotation() unexpected error: %v", err)
	}
	if err := quotations.Create(context.Background(), q); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/reset", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	if len(sales.sales) != 0 {
		t.Error("sales not cleared")
	}
	if len(quotations.quotations) != 0 {
		t.Error("quotations not cleared")
	}
	if len(products.products) != 0 {
		t.Error("products not cleared")
	}
}
