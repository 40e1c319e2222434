package route

import (
	"github.com/gin-gonic/gin"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/controller"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/session"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/middleware"
)

// RegisterProductRoutes registers the product catalog endpoints.
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController, sessions session.Repository) {
	products := r.Group("/products")
	products.Use(middleware.AuthMiddleware(sessions))
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/categories", productController.Categories)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id", productController.Delete)
	}
}
