package route

import (
	"github.com/gin-gonic/gin"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/controller"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/session"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/middleware"
)

// RegisterSaleRoutes registers the sales, payment and invoice endpoints.
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController, invoiceController *controller.InvoiceController, sessions session.Repository) {
	sales := r.Group("/sales")
	sales.Use(middleware.AuthMiddleware(sessions))
	{
		sales.POST("", saleController.Create)
		sales.GET("", saleController.List)
		sales.GET("/:id", saleController.Get)
		sales.PATCH("/:id/payment", saleController.UpdatePayment)
		sales.GET("/:id/invoice", invoiceController.Download)
	}
}
