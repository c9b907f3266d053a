package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"toko-pos/config"
	"toko-pos/controllers"
	_ "toko-pos/docs"
	"toko-pos/middleware"
	"toko-pos/models"
	"toko-pos/repositories"
	"toko-pos/routes"
	"toko-pos/services"
)

// @title Toko POS API
// @version 1.0
// @description Point of sale backend for a single-store inventory dashboard.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitDB()
	defer models.CloseDB()

	models.InitRedis()
	defer models.CloseRedis()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	productRepo := repositories.NewProductRepository()
	saleRepo := repositories.NewSaleRepository()

	catalog := services.NewCatalog(productRepo)
	if err := catalog.Refresh(context.Background()); err != nil {
		log.Fatalf("Failed to load product catalog: %v", err)
	}

	listener := repositories.NewProductListener(models.DB, catalog.Refresh, catalog.Fail)
	if err := listener.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start product listener: %v", err)
	}
	defer listener.Close()

	var alerter *services.StockAlerter
	if config.AppConfig.AlertEmail != "" {
		emailService, err := models.NewEmailService()
		if err != nil {
			log.Printf("Email service unavailable, low stock alerts disabled: %v", err)
		} else {
			alerter = services.NewStockAlerter(productRepo, emailService, config.AppConfig.AlertEmail)
		}
	} else {
		log.Println("LOW_STOCK_ALERT_EMAIL not set, low stock alerts disabled")
	}

	sessions := services.NewSessionManager(catalog, config.AppConfig.PosPageSize)
	engine := services.NewCheckoutEngine(saleRepo)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, routes.Controllers{
		Auth:      controllers.NewAuthController(services.NewAuthService()),
		Product:   controllers.NewProductController(productRepo, catalog),
		POS:       controllers.NewPOSController(sessions, engine, catalog, saleRepo, alerter),
		History:   controllers.NewHistoryController(saleRepo),
		Report:    controllers.NewReportController(saleRepo),
		Dashboard: controllers.NewDashboardController(productRepo, saleRepo),
	})

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
