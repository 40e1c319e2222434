package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/dto"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/repository"
	productdomain "github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/product"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/logger"
)

// ProductController handles catalog and inventory requests.
type ProductController struct {
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewProductController creates a new ProductController.
func NewProductController(productRepo productdomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create registers a new product
// @Summary Create product
// @Description Registers a new catalog product and computes its derived fields
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Product data"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	product, err := productdomain.NewProduct(
		req.Name,
		req.Category,
		req.WoodType,
		req.Length,
		req.Width,
		req.Height,
		req.PricePerCft,
		req.Quantity,
		req.MinOrderQuantity,
		req.Notes,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "failed to create product", err.Error()))
		return
	}

	if err := c.productRepo.Create(ctx, product); err != nil {
		c.logger.Error("failed to persist product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save product", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// Get returns a product by ID
// @Summary Get product
// @Description Returns a product by its ID
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "missing product id", ""))
		return
	}

	product, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrProductNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch product", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// List returns the product catalog
// @Summary List products
// @Description Returns the paginated product catalog, optionally filtered by stock status
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Param status query string false "Stock status filter"
// @Success 200 {object} dto.ProductListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size
	status := productdomain.StockStatus(ctx.Query("status"))

	var (
		products []*productdomain.Product
		total    int
		err      error
	)
	if status != "" {
		products, err = c.productRepo.ListByStatus(ctx, status, size, offset)
		if err == nil {
			total, err = c.productRepo.CountByStatus(ctx, status)
		}
	} else {
		products, err = c.productRepo.List(ctx, size, offset)
		if err == nil {
			total, err = c.productRepo.Count(ctx)
		}
	}
	if err != nil {
		c.logger.Error("failed to list products", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list products", err.Error()))
		return
	}

	totalPages := (total + size - 1) / size

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, page, size, totalPages))
}

// Update modifies a product
// @Summary Update product
// @Description Updates a product and recomputes its derived fields
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Product ID"
// @Param product body dto.ProductRequest true "Product data"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "missing product id", ""))
		return
	}

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	product, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrProductNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", err.Error()))
			return
		}
		c.logger.Error("failed to fetch product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch product", err.Error()))
		return
	}

	err = product.Update(
		req.Name,
		req.Category,
		req.WoodType,
		req.Length,
		req.Width,
		req.Height,
		req.PricePerCft,
		req.Quantity,
		req.MinOrderQuantity,
		req.Notes,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "failed to update product", err.Error()))
		return
	}

	if err := c.productRepo.Update(ctx, product); err != nil {
		if err == repository.ErrProductNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", err.Error()))
			return
		}
		c.logger.Error("failed to persist product update", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save product", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// Delete removes a product
// @Summary Delete product
// @Description Removes a product from the catalog
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Product ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "missing product id", ""))
		return
	}

	if err := c.productRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrProductNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", err.Error()))
			return
		}
		c.logger.Error("failed to delete product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to delete product", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("product deleted", nil))
}

// Categories lists the catalog categories
// @Summary List categories
// @Description Returns the fixed list of catalog categories
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.CategoriesResponse
// @Router /products/categories [get]
func (c *ProductController) Categories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.CategoriesResponse{Categories: productdomain.Categories})
}
