package route

import (
	"github.com/gin-gonic/gin"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/controller"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/session"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/middleware"
)

// RegisterQuotationRoutes registers the quotation tracking endpoints.
func RegisterQuotationRoutes(r *gin.RouterGroup, quotationController *controller.QuotationController, sessions session.Repository) {
	quotations := r.Group("/quotations")
	quotations.Use(middleware.AuthMiddleware(sessions))
	{
		quotations.POST("", quotationController.Create)
		quotations.GET("", quotationController.List)
		quotations.GET("/:id", quotationController.Get)
		quotations.PUT("/:id", quotationController.Update)
		quotations.PATCH("/:id/received", quotationController.MarkReceived)
		quotations.DELETE("/:id", quotationController.Delete)
	}
}
