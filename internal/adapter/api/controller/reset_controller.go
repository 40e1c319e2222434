package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/dto"
	productdomain "github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/product"
	quotationdomain "github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/quotation"
	saledomain "github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/sale"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/logger"
)

// ResetController handles the admin data-reset request.
type ResetController struct {
	saleRepo      saledomain.Repository
	quotationRepo quotationdomain.Repository
	productRepo   productdomain.Repository
	logger        logger.Logger
}

// NewResetController creates a new ResetController.
func NewResetController(saleRepo saledomain.Repository, quotationRepo quotationdomain.Repository, productRepo productdomain.Repository, logger logger.Logger) *ResetController {
	return &ResetController{
		saleRepo:      saleRepo,
		quotationRepo: quotationRepo,
		productRepo:   productRepo,
		logger:        logger,
	}
}

// Reset clears all business records. Sales go first so the products they
// reference never outlive them in a partial failure.
// @Summary Reset data
// @Description Deletes all sales, quotations and products
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reset [post]
func (c *ResetController) Reset(ctx *gin.Context) {
	if err := c.saleRepo.DeleteAll(ctx); err != nil {
		c.logger.Error("failed to reset sales", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to reset data", err.Error()))
		return
	}
	if err := c.quotationRepo.DeleteAll(ctx); err != nil {
		c.logger.Error("failed to reset quotations", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to reset data", err.Error()))
		return
	}
	if err := c.productRepo.DeleteAll(ctx); err != nil {
		c.logger.Error("failed to reset products", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to reset data", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("data reset", nil))
}
