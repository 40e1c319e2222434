package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/dto"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/repository"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/billing"
	saledomain "github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/sale"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/invoice"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/logger"
)

// InvoiceController streams sale invoices as PDF documents.
type InvoiceController struct {
	saleRepo saledomain.Repository
	seller   billing.BusinessInfo
	logger   logger.Logger
}

// NewInvoiceController creates a new InvoiceController.
func NewInvoiceController(saleRepo saledomain.Repository, seller billing.BusinessInfo, logger logger.Logger) *InvoiceController {
	return &InvoiceController{
		saleRepo: saleRepo,
		seller:   seller,
		logger:   logger,
	}
}

// Download streams the invoice PDF of a sale
// @Summary Download invoice
// @Description Generates and streams the invoice PDF for a sale
// @Tags sales
// @Produce application/pdf
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Sale ID"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/invoice [get]
func (c *InvoiceController) Download(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "missing sale id", ""))
		return
	}

	sale, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrSaleNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "sale not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch sale", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch sale", err.Error()))
		return
	}

	renderer := invoice.NewPDFRenderer()
	invoice.Generate(renderer, sale, c.seller)

	ctx.Header("Content-Type", "application/pdf")
	ctx.Header("Content-Disposition", `attachment; filename="`+invoice.Filename(sale)+`"`)
	if err := renderer.Output(ctx.Writer); err != nil {
		c.logger.Error("failed to stream invoice", "error", err)
	}
}
