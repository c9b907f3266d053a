package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"toko-pos/controllers"
	"toko-pos/middleware"
)

type Controllers struct {
	Auth      *controllers.AuthController
	Product   *controllers.ProductController
	POS       *controllers.POSController
	History   *controllers.HistoryController
	Report    *controllers.ReportController
	Dashboard *controllers.DashboardController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/login", ctrl.Auth.Login)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/dashboard", ctrl.Dashboard.GetStats)

		auth.GET("/pos/grid", ctrl.POS.GetGrid)
		auth.GET("/pos/cart", ctrl.POS.GetCart)
		auth.POST("/pos/cart", ctrl.POS.AddToCart)
		auth.PATCH("/pos/cart/:index", ctrl.POS.AdjustQuantity)
		auth.DELETE("/pos/cart/:index", ctrl.POS.RemoveItem)
		auth.DELETE("/pos/cart", ctrl.POS.ClearCart)
		auth.POST("/pos/checkout", ctrl.POS.Checkout)
		auth.GET("/pos/receipt/:id", ctrl.POS.GetReceipt)

		auth.GET("/history", ctrl.History.GetHistory)
		auth.GET("/history/:id", ctrl.History.GetDetail)
	}

	// Catalog management and reports are owner pages, hidden from kasir.
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/products", ctrl.Product.GetAllProducts)
		admin.GET("/products/:id", ctrl.Product.GetProductByID)
		admin.POST("/products", ctrl.Product.CreateProduct)
		admin.PATCH("/products/:id", ctrl.Product.UpdateProduct)
		admin.DELETE("/products/:id", ctrl.Product.DeleteProduct)
		admin.POST("/products/image", ctrl.Product.UploadImage)

		admin.GET("/reports", ctrl.Report.GetReports)
	}
}
