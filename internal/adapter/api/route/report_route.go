package route

import (
	"github.com/gin-gonic/gin"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/controller"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/session"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/middleware"
)

// RegisterReportRoutes registers the dashboard and export endpoints, plus
// the admin data reset.
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController, resetController *controller.ResetController, sessions session.Repository) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware(sessions))
	{
		reports.GET("/dashboard", reportController.Dashboard)
		reports.GET("/sales.xlsx", reportController.ExportSales)
	}

	admin := r.Group("")
	admin.Use(middleware.AuthMiddleware(sessions))
	{
		admin.POST("/reset", resetController.Reset)
	}
}
