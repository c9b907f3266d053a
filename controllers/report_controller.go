package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"toko-pos/models"
	"toko-pos/repositories"
)

type ReportController struct {
	saleRepo *repositories.SaleRepository
}

func NewReportController(saleRepo *repositories.SaleRepository) *ReportController {
	return &ReportController{saleRepo: saleRepo}
}

// @Summary Sales reports
// @Description Revenue/COGS/profit for the day, week-to-date, and month-to-date anchored on a date, plus top products
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param date query string false "Anchor day (format: 2006-01-02), defaults to today"
// @Param keyword query string false "Filter by product name or transaction id"
// @Success 200 {object} models.Response
// @Router /admin/reports [get]
func (ctrl *ReportController) GetReports(c *gin.Context) {
	anchor := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Format tanggal tidak valid (2006-01-02)"})
			return
		}
		anchor = parsed
	}
	keyword := c.Query("keyword")

	cacheKey := fmt.Sprintf("reports_%s_%s", anchor.Format("2006-01-02"), keyword)
	ctx := c.Request.Context()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	startOfDay := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)
	startOfWeek := startOfDay.AddDate(0, 0, -int(startOfDay.Weekday()))
	startOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())

	daily, err := ctrl.saleRepo.PeriodReport(ctx, startOfDay, endOfDay, keyword)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	weekly, err := ctrl.saleRepo.PeriodReport(ctx, startOfWeek, time.Time{}, keyword)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	monthly, err := ctrl.saleRepo.PeriodReport(ctx, startOfMonth, time.Time{}, keyword)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	topProducts, err := ctrl.saleRepo.TopProducts(ctx, startOfDay, endOfDay, keyword, 10)
	if err != nil {
		ctrl.fail(c, err)
		return
	}

	response := gin.H{
		"success": true, "message": "Reports retrieved",
		"data": gin.H{
			"daily":        daily,
			"weekly":       weekly,
			"monthly":      monthly,
			"top_products": topProducts,
		},
	}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(context.Background(), cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

func (ctrl *ReportController) fail(c *gin.Context, err error) {
	c.JSON(500, gin.H{"success": false, "message": "Gagal memuat laporan", "error": err.Error()})
}
