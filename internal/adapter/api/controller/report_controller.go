package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/dto"
	productdomain "github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/product"
	quotationdomain "github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/quotation"
	saledomain "github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/sale"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/logger"
)

// exportPageSize bounds the number of sales pulled into a workbook.
const exportPageSize = 10000

// ReportController serves the dashboard aggregates and workbook exports.
type ReportController struct {
	saleRepo      saledomain.Repository
	productRepo   productdomain.Repository
	quotationRepo quotationdomain.Repository
	logger        logger.Logger
}

// NewReportController creates a new ReportController.
func NewReportController(saleRepo saledomain.Repository, productRepo productdomain.Repository, quotationRepo quotationdomain.Repository, logger logger.Logger) *ReportController {
	return &ReportController{
		saleRepo:      saleRepo,
		productRepo:   productRepo,
		quotationRepo: quotationRepo,
		logger:        logger,
	}
}

// Dashboard returns the aggregate figures
// @Summary Dashboard stats
// @Description Returns sales, inventory and quotation aggregates
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/dashboard [get]
func (c *ReportController) Dashboard(ctx *gin.Context) {
	stats, err := c.saleRepo.Stats(ctx)
	if err != nil {
		c.logger.Error("failed to compute sale stats", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to compute stats", err.Error()))
		return
	}

	totalProducts, err := c.productRepo.Count(ctx)
	if err != nil {
		c.logger.Error("failed to count products", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to compute stats", err.Error()))
		return
	}
	lowStock, err := c.productRepo.CountByStatus(ctx, productdomain.StatusLowStock)
	if err != nil {
		c.logger.Error("failed to count low stock products", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to compute stats", err.Error()))
		return
	}

	totalQuotations, err := c.quotationRepo.Count(ctx)
	if err != nil {
		c.logger.Error("failed to count quotations", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to compute stats", err.Error()))
		return
	}
	pendingQuotations, err := c.quotationRepo.CountByStatus(ctx, quotationdomain.StatusPending)
	if err != nil {
		c.logger.Error("failed to count pending quotations", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to compute stats", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.DashboardResponse{
		TotalSales:        stats.TotalSales,
		PendingPayments:   stats.PendingPayments,
		TotalRevenue:      stats.TotalRevenue,
		ReceivedAmount:    stats.ReceivedAmount,
		PendingAmount:     stats.PendingAmount,
		TotalProducts:     totalProducts,
		LowStockProducts:  lowStock,
		TotalQuotations:   totalQuotations,
		PendingQuotations: pendingQuotations,
	})
}

// ExportSales streams the sales history as an XLSX workbook
// @Summary Export sales
// @Description Streams the sales history with a totals row as an XLSX workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param Authorization header string true "Bearer token"
// @Success 200 {file} binary
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales.xlsx [get]
func (c *ReportController) ExportSales(ctx *gin.Context) {
	sales, err := c.saleRepo.List(ctx, exportPageSize, 0)
	if err != nil {
		c.logger.Error("failed to list sales for export", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to export sales", err.Error()))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sales"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Invoice No", "Date", "Customer", "Company", "Phone",
		"Subtotal", "GST", "Transport", "Grand Total",
		"Paid", "Advance", "Balance Due", "Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	var revenue, received, pending float64
	for row, s := range sales {
		values := []interface{}{
			s.InvoiceNumber,
			s.CreatedAt.Format("02/01/2006"),
			s.Customer.Name,
			s.Customer.CompanyName,
			s.Customer.Phone,
			s.Subtotal,
			s.GSTAmount,
			s.TransportAmount,
			s.GrandTotal,
			s.AmountPaid,
			s.AdvanceAmount,
			s.BalanceDue,
			string(s.Status),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
		revenue += s.GrandTotal
		received += s.AmountPaid + s.AdvanceAmount
		pending += s.BalanceDue
	}

	totalsRow := len(sales) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalsRow), "Totals")
	f.SetCellValue(sheet, fmt.Sprintf("I%d", totalsRow), revenue)
	f.SetCellValue(sheet, fmt.Sprintf("J%d", totalsRow), received)
	f.SetCellValue(sheet, fmt.Sprintf("L%d", totalsRow), pending)

	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Disposition", `attachment; filename="sales_report.xlsx"`)
	if _, err := f.WriteTo(ctx.Writer); err != nil {
		c.logger.Error("failed to stream sales export", "error", err)
	}
}
