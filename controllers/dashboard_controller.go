package controllers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"toko-pos/models"
	"toko-pos/repositories"
)

type DashboardController struct {
	productRepo *repositories.ProductRepository
	saleRepo    *repositories.SaleRepository
}

func NewDashboardController(productRepo *repositories.ProductRepository, saleRepo *repositories.SaleRepository) *DashboardController {
	return &DashboardController{productRepo: productRepo, saleRepo: saleRepo}
}

// @Summary Dashboard stats
// @Description Product counts, low-stock count, and today's sales summary
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /dashboard [get]
func (ctrl *DashboardController) GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	cacheKey := "dashboard_stats"

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	total, lowStock, err := ctrl.productRepo.CountProducts(ctx)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Gagal memuat statistik", "error": err.Error()})
		return
	}

	todayCount, todayRevenue, recent, err := ctrl.saleRepo.TodaySummary(ctx, 5)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Gagal memuat statistik", "error": err.Error()})
		return
	}

	response := gin.H{
		"success": true, "message": "Dashboard stats retrieved",
		"data": models.DashboardStats{
			TotalProducts:     total,
			LowStockCount:     lowStock,
			TodayTransactions: todayCount,
			TodayRevenue:      todayRevenue,
			RecentActivity:    recent,
		},
	}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(context.Background(), cacheKey, string(jsonData), time.Minute)
	}

	c.JSON(200, response)
}
