package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/dto"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/repository"
	quotationdomain "github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/quotation"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/logger"
)

// QuotationController handles quotation-tracking requests.
type QuotationController struct {
	quotationRepo quotationdomain.Repository
	logger        logger.Logger
}

// NewQuotationController creates a new QuotationController.
func NewQuotationController(quotationRepo quotationdomain.Repository, logger logger.Logger) *QuotationController {
	return &QuotationController{
		quotationRepo: quotationRepo,
		logger:        logger,
	}
}

// Create registers a new quotation
// @Summary Create quotation
// @Description Registers a new quotation in pending status
// @Tags quotations
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param quotation body dto.QuotationRequest true "Quotation data"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotations [post]
func (c *QuotationController) Create(ctx *gin.Context) {
	var req dto.QuotationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	quotation, err := quotationdomain.NewQuotation(req.QuotationName, req.CustomerName, req.DateGiven)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "failed to create quotation", err.Error()))
		return
	}
	if req.DateOrderReceived != nil {
		quotation.MarkReceived(*req.DateOrderReceived)
	}

	if err := c.quotationRepo.Create(ctx, quotation); err != nil {
		c.logger.Error("failed to persist quotation", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save quotation", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToQuotationResponse(quotation))
}

// Get returns a quotation by ID
// @Summary Get quotation
// @Description Returns a quotation by its ID
// @Tags quotations
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotations/{id} [get]
func (c *QuotationController) Get(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "missing quotation id", ""))
		return
	}

	quotation, err := c.quotationRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrQuotationNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "quotation not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch quotation", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch quotation", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToQuotationResponse(quotation))
}

// List returns the quotations
// @Summary List quotations
// @Description Returns the paginated quotation list
// @Tags quotations
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.QuotationListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotations [get]
func (c *QuotationController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size

	quotations, err := c.quotationRepo.List(ctx, size, offset)
	if err != nil {
		c.logger.Error("failed to list quotations", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list quotations", err.Error()))
		return
	}

	total, err := c.quotationRepo.Count(ctx)
	if err != nil {
		c.logger.Error("failed to count quotations", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to count quotations", err.Error()))
		return
	}

	totalPages := (total + size - 1) / size

	ctx.JSON(http.StatusOK, dto.ToQuotationListResponse(quotations, total, page, size, totalPages))
}

// Update modifies a quotation
// @Summary Update quotation
// @Description Updates a quotation and rederives its status
// @Tags quotations
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Quotation ID"
// @Param quotation body dto.QuotationRequest true "Quotation data"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotations/{id} [put]
func (c *QuotationController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "missing quotation id", ""))
		return
	}

	var req dto.QuotationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	quotation, err := c.quotationRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrQuotationNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "quotation not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch quotation", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch quotation", err.Error()))
		return
	}

	if err := quotation.Update(req.QuotationName, req.CustomerName, req.DateGiven, req.DateOrderReceived); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "failed to update quotation", err.Error()))
		return
	}

	if err := c.quotationRepo.Update(ctx, quotation); err != nil {
		if err == repository.ErrQuotationNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "quotation not found", err.Error()))
			return
		}
		c.logger.Error("failed to persist quotation update", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save quotation", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToQuotationResponse(quotation))
}

// MarkReceived marks a quotation as converted into an order
// @Summary Mark quotation received
// @Description Sets the order-received date to now and updates the status
// @Tags quotations
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotations/{id}/received [patch]
func (c *QuotationController) MarkReceived(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "missing quotation id", ""))
		return
	}

	quotation, err := c.quotationRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrQuotationNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "quotation not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch quotation", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch quotation", err.Error()))
		return
	}

	quotation.MarkReceived(time.Now())

	if err := c.quotationRepo.Update(ctx, quotation); err != nil {
		c.logger.Error("failed to persist quotation update", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save quotation", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToQuotationResponse(quotation))
}

// Delete removes a quotation
// @Summary Delete quotation
// @Description Removes a quotation
// @Tags quotations
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Quotation ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotations/{id} [delete]
func (c *QuotationController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "missing quotation id", ""))
		return
	}

	if err := c.quotationRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrQuotationNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "quotation not found", err.Error()))
			return
		}
		c.logger.Error("failed to delete quotation", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to delete quotation", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("quotation deleted", nil))
}
