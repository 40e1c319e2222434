package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/controller"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/route"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/repository"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/billing"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/session"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/infrastructure/database"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/logger"
)

// App holds the application dependencies.
type App struct {
	router      *gin.Engine
	db          *pgxpool.Pool
	logger      logger.Logger
	sessionRepo session.Repository
}

// NewApp wires the repositories, controllers and routes.
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	credentials := controller.AdminCredentials{
		Username:     os.Getenv("ADMIN_USERNAME"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	if credentials.Username == "" || credentials.PasswordHash == "" {
		db.Close()
		return nil, fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD_HASH must be set")
	}

	seller := sellerFromEnv()

	productController := controller.NewProductController(productRepo, log)
	saleController := controller.NewSaleController(saleRepo, productRepo, log)
	quotationController := controller.NewQuotationController(quotationRepo, log)
	authController := controller.NewAuthController(sessionRepo, credentials, log)
	invoiceController := controller.NewInvoiceController(saleRepo, seller, log)
	reportController := controller.NewReportController(saleRepo, productRepo, quotationRepo, log)
	resetController := controller.NewResetController(saleRepo, quotationRepo, productRepo, log)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(corsConfig()))

	app := &App{
		router:      router,
		db:          db,
		logger:      log,
		sessionRepo: sessionRepo,
	}

	api := router.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterAuthRoutes(api, authController)
	route.RegisterProductRoutes(api, productController, sessionRepo)
	route.RegisterSaleRoutes(api, saleController, invoiceController, sessionRepo)
	route.RegisterQuotationRoutes(api, quotationController, sessionRepo)
	route.RegisterReportRoutes(api, reportController, resetController, sessionRepo)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return app, nil
}

// Start runs the HTTP server.
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	a.logger.Info("starting server", "port", port)
	return a.router.Run(":" + port)
}

// Close releases the application resources.
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// corsConfig builds the CORS policy: an allow-list from CORS_ALLOWED_ORIGINS
// plus an optional trusted suffix (CORS_ORIGIN_SUFFIX) for preview deploy
// hosts.
func corsConfig() cors.Config {
	allowed := strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",")
	suffix := os.Getenv("CORS_ORIGIN_SUFFIX")

	origins := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		if o = strings.TrimSpace(o); o != "" {
			origins[o] = true
		}
	}

	config := cors.DefaultConfig()
	config.AllowOriginFunc = func(origin string) bool {
		if origins[origin] {
			return true
		}
		return suffix != "" && strings.HasSuffix(origin, suffix)
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	config.MaxAge = 12 * time.Hour
	return config
}

// sellerFromEnv completes the seller profile with the fiscal and bank fields
// kept out of source.
func sellerFromEnv() billing.BusinessInfo {
	seller := billing.Seller
	if v := os.Getenv("BUSINESS_GSTIN"); v != "" {
		seller.GSTIN = v
	}
	if v := os.Getenv("BUSINESS_PAN"); v != "" {
		seller.PAN = v
	}
	if v := os.Getenv("BUSINESS_BANK_NAME"); v != "" {
		seller.BankName = v
	}
	if v := os.Getenv("BUSINESS_ACCOUNT_HOLDER"); v != "" {
		seller.AccountHolderName = v
	}
	if v := os.Getenv("BUSINESS_ACCOUNT_NUMBER"); v != "" {
		seller.AccountNumber = v
	}
	if v := os.Getenv("BUSINESS_IFSC_CODE"); v != "" {
		seller.IFSCCode = v
	}
	return seller
}
