package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"toko-pos/models"
	"toko-pos/repositories"
)

type HistoryController struct {
	saleRepo *repositories.SaleRepository
}

func NewHistoryController(saleRepo *repositories.SaleRepository) *HistoryController {
	return &HistoryController{saleRepo: saleRepo}
}

// @Summary Transaction history
// @Description Transactions of one calendar day, newest first; defaults to today
// @Tags History
// @Security BearerAuth
// @Produce json
// @Param date query string false "Day (format: 2006-01-02)"
// @Success 200 {object} models.Response
// @Router /history [get]
func (ctrl *HistoryController) GetHistory(c *gin.Context) {
	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Format tanggal tidak valid (2006-01-02)"})
			return
		}
		day = parsed
	}

	transactions, err := ctrl.saleRepo.ListTransactionsByDay(c.Request.Context(), day)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Gagal memuat data.", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "History retrieved", "data": transactions})
}

// @Summary Transaction detail
// @Tags History
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /history/{id} [get]
func (ctrl *HistoryController) GetDetail(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	transaction, err := ctrl.saleRepo.GetTransaction(ctx, id)
	if errors.Is(err, models.ErrTransactionNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "ID Transaksi tidak ditemukan"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Gagal memuat detail transaksi", "error": err.Error()})
		return
	}

	items, err := ctrl.saleRepo.GetTransactionItems(ctx, id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Gagal memuat detail transaksi", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"success": true, "message": "Detail retrieved",
		"data": models.ReceiptResponse{Transaction: *transaction, Items: items},
	})
}
