package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/dto"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/repository"
	productdomain "github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/product"
	saledomain "github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/sale"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/logger"
)

// SaleController handles sales and payment-tracking requests.
type SaleController struct {
	saleRepo    saledomain.Repository
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewSaleController creates a new SaleController.
func NewSaleController(saleRepo saledomain.Repository, productRepo productdomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create registers a new sale
// @Summary Create sale
// @Description Registers a sale, assigns the invoice number and decrements stock atomically
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Sale data"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	items := make([]saledomain.Item, 0, len(req.Items))
	for _, line := range req.Items {
		product, err := c.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			if err == repository.ErrProductNotFound {
				ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", line.ProductID))
				return
			}
			c.logger.Error("failed to fetch product for sale", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch product", err.Error()))
			return
		}

		item, err := saledomain.NewItem(product, line.Quantity)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid sale item", err.Error()))
			return
		}
		items = append(items, item)
	}

	sale, err := saledomain.NewSale(saledomain.Input{
		Customer: saledomain.Customer{
			Name:        req.Customer.Name,
			CompanyName: req.Customer.CompanyName,
			Phone:       req.Customer.Phone,
			Email:       req.Customer.Email,
			Address:     req.Customer.Address,
			GSTIN:       req.Customer.GSTIN,
			State:       req.Customer.State,
			StateCode:   req.Customer.StateCode,
		},
		Items:               items,
		GSTEnabled:          req.GSTEnabled,
		GSTRate:             req.GSTRate,
		IsInterState:        req.IsInterState,
		PlaceOfSupply:       req.PlaceOfSupply,
		TransportEnabled:    req.TransportEnabled,
		TransportAmount:     req.TransportAmount,
		VehicleNumber:       req.VehicleNumber,
		PaymentMode:         req.PaymentMode,
		PaymentMethod:       req.PaymentMethod,
		AmountPaid:          req.AmountPaid,
		AdvanceAmount:       req.AdvanceAmount,
		ExpectedPaymentDate: req.ExpectedPaymentDate,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "failed to create sale", err.Error()))
		return
	}

	if err := c.saleRepo.Create(ctx, sale); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "insufficient stock for one or more items", err.Error()))
			return
		}
		c.logger.Error("failed to persist sale", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save sale", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// Get returns a sale by ID
// @Summary Get sale
// @Description Returns a sale by its ID
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// List returns the sales history
// @Summary List sales
// @Description Returns the paginated sales history, optionally filtered by payment status
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Param status query string false "Payment status filter"
// @Success 200 {object} dto.SaleListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size
	status := saledomain.Status(ctx.Query("status"))

	var (
		sales []*saledomain.Sale
		total int
		err   error
	)
	if status != "" {
		sales, err = c.saleRepo.ListByStatus(ctx, status, size, offset)
	} else {
		sales, err = c.saleRepo.List(ctx, size, offset)
	}
	if err != nil {
		c.logger.Error("failed to list sales", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list sales", err.Error()))
		return
	}

	if status != "" {
		total, err = c.saleRepo.CountByStatus(ctx, status)
	} else {
		var stats *saledomain.Stats
		stats, err = c.saleRepo.Stats(ctx)
		if stats != nil {
			total = stats.TotalSales
		}
	}
	if err != nil {
		c.logger.Error("failed to count sales", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to count sales", err.Error()))
		return
	}

	totalPages := (total + size - 1) / size

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, total, page, size, totalPages))
}

// UpdatePayment records a payment against a sale
// @Summary Update payment
// @Description Overwrites the paid amount and recomputes balance due and status
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Sale ID"
// @Param payment body dto.PaymentUpdateRequest true "Payment data"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/payment [patch]
func (c *SaleController) UpdatePayment(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "missing sale id", ""))
		return
	}

	var req dto.PaymentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
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

	if err := sale.RecordPayment(req.AmountPaid); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "failed to record payment", err.Error()))
		return
	}

	if err := c.saleRepo.UpdatePayment(ctx, sale); err != nil {
		if err == repository.ErrSaleNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "sale not found", err.Error()))
			return
		}
		c.logger.Error("failed to persist payment update", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save payment", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}
