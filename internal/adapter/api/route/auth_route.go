package route

import (
	"github.com/gin-gonic/gin"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/controller"
)

// RegisterAuthRoutes registers the admin session endpoints. These are the
// only unauthenticated routes besides the health check.
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/verify", authController.Verify)
		auth.POST("/logout", authController.Logout)
		auth.POST("/log", authController.Log)
	}
}
