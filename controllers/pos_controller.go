package controllers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"toko-pos/models"
	"toko-pos/repositories"
	"toko-pos/services"
)

// POSController drives one register session per signed-in operator: the
// product grid, the cart, and the checkout handoff to the receipt view.
type POSController struct {
	sessions *services.SessionManager
	engine   *services.CheckoutEngine
	catalog  *services.Catalog
	saleRepo *repositories.SaleRepository
	alerter  *services.StockAlerter
}

func NewPOSController(
	sessions *services.SessionManager,
	engine *services.CheckoutEngine,
	catalog *services.Catalog,
	saleRepo *repositories.SaleRepository,
	alerter *services.StockAlerter,
) *POSController {
	return &POSController{
		sessions: sessions,
		engine:   engine,
		catalog:  catalog,
		saleRepo: saleRepo,
		alerter:  alerter,
	}
}

func (ctrl *POSController) session(c *gin.Context) *services.Session {
	return ctrl.sessions.Get(c.GetString("user_id"))
}

// @Summary Product grid
// @Description Paged, filtered grid of in-stock products for the selector
// @Tags POS
// @Security BearerAuth
// @Produce json
// @Param keyword query string false "Name keyword"
// @Param page query int false "Page number"
// @Success 200 {object} models.PaginationResponse
// @Router /pos/grid [get]
func (ctrl *POSController) GetGrid(c *gin.Context) {
	if err := ctrl.catalog.Err(); err != nil {
		c.JSON(503, gin.H{"success": false, "message": "Gagal memuat data produk", "error": err.Error()})
		return
	}

	grid := ctrl.session(c).Grid

	if keyword, ok := c.GetQuery("keyword"); ok {
		grid.SetKeyword(keyword)
	}
	if pageStr, ok := c.GetQuery("page"); ok {
		page, _ := strconv.Atoi(pageStr)
		grid.SetPage(page)
	}

	items, page, totalPages, totalItems := grid.Current()

	c.JSON(200, gin.H{
		"success": true, "message": "Products retrieved", "data": items,
		"meta": gin.H{
			"page": page, "total_pages": totalPages, "total_items": totalItems,
		},
	})
}

// @Summary View cart
// @Tags POS
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /pos/cart [get]
func (ctrl *POSController) GetCart(c *gin.Context) {
	cart := ctrl.session(c).Cart
	c.JSON(200, gin.H{
		"success": true, "message": "Cart retrieved",
		"data": models.CartResponse{Items: cart.Items(), Total: cart.Total()},
	})
}

// @Summary Add product to cart
// @Description Adds one unit, merging into an existing line for the same product
// @Tags POS
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Product"
// @Success 200 {object} models.Response
// @Router /pos/cart [post]
func (ctrl *POSController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "product_id wajib diisi", "error": err.Error()})
		return
	}

	cart := ctrl.session(c).Cart
	if err := cart.Add(req.ProductID); err != nil {
		ctrl.cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true, "message": "Produk ditambahkan",
		"data": models.CartResponse{Items: cart.Items(), Total: cart.Total()},
	})
}

// @Summary Adjust cart line quantity
// @Description delta=1 raises quantity (stock-bounded), delta=-1 lowers it; a last unit removes the line
// @Tags POS
// @Security BearerAuth
// @Produce json
// @Param index path int true "Cart line index"
// @Param delta query int true "+1 or -1"
// @Success 200 {object} models.Response
// @Router /pos/cart/{index} [patch]
func (ctrl *POSController) AdjustQuantity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Index tidak valid"})
		return
	}

	cart := ctrl.session(c).Cart

	delta, _ := strconv.Atoi(c.Query("delta"))
	switch {
	case delta > 0:
		err = cart.Increment(index)
	case delta < 0:
		err = cart.Decrement(index)
	default:
		c.JSON(400, gin.H{"success": false, "message": "delta harus +1 atau -1"})
		return
	}

	if err != nil {
		ctrl.cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true, "message": "Keranjang diperbarui",
		"data": models.CartResponse{Items: cart.Items(), Total: cart.Total()},
	})
}

// @Summary Remove cart line
// @Tags POS
// @Security BearerAuth
// @Produce json
// @Param index path int true "Cart line index"
// @Success 200 {object} models.Response
// @Router /pos/cart/{index} [delete]
func (ctrl *POSController) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Index tidak valid"})
		return
	}

	cart := ctrl.session(c).Cart
	if err := cart.Remove(index); err != nil {
		ctrl.cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true, "message": "Item dihapus",
		"data": models.CartResponse{Items: cart.Items(), Total: cart.Total()},
	})
}

// @Summary Clear cart
// @Description Empties the cart; the confirmation prompt is the client's job
// @Tags POS
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /pos/cart [delete]
func (ctrl *POSController) ClearCart(c *gin.Context) {
	ctrl.session(c).Cart.Clear()
	c.JSON(200, gin.H{"success": true, "message": "Keranjang dikosongkan"})
}

// @Summary Checkout
// @Description Commits the sale atomically and returns the new transaction id
// @Tags POS
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Payment"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /pos/checkout [post]
func (ctrl *POSController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "cash_received wajib diisi", "error": err.Error()})
		return
	}

	operator := c.GetString("user_id")
	cart := ctrl.sessions.Get(operator).Cart

	// The cart empties on success; capture the product ids first for the
	// low-stock check.
	productIDs := []string{}
	for _, item := range cart.Items() {
		productIDs = append(productIDs, item.ProductID)
	}

	transactionID, err := ctrl.engine.Checkout(c.Request.Context(), cart, *req.CashReceived, operator)
	switch {
	case errors.Is(err, models.ErrEmptyCart):
		c.JSON(400, gin.H{"success": false, "message": "Keranjang kosong"})
		return
	case errors.Is(err, models.ErrInsufficientPayment):
		c.JSON(400, gin.H{"success": false, "message": "Uang yang diterima kurang!"})
		return
	case errors.Is(err, models.ErrInsufficientStock):
		c.JSON(409, gin.H{"success": false, "message": "Stok tidak mencukupi", "error": err.Error()})
		return
	case err != nil:
		c.JSON(500, gin.H{"success": false, "message": "Transaksi gagal", "error": err.Error()})
		return
	}

	invalidateStatsCache()
	go ctrl.alerter.NotifySoldProducts(context.Background(), productIDs)

	c.JSON(201, gin.H{
		"success": true, "message": "Transaksi berhasil",
		"data": gin.H{"transaction_id": transactionID},
	})
}

// @Summary Receipt data
// @Description Frozen transaction record and line items for receipt rendering
// @Tags POS
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /pos/receipt/{id} [get]
func (ctrl *POSController) GetReceipt(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	transaction, err := ctrl.saleRepo.GetTransaction(ctx, id)
	if errors.Is(err, models.ErrTransactionNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Transaksi tidak ditemukan"})
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
		"success": true, "message": "Receipt retrieved",
		"data": models.ReceiptResponse{Transaction: *transaction, Items: items},
	})
}

func (ctrl *POSController) cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInsufficientStock):
		c.JSON(400, gin.H{"success": false, "message": "Stok tidak mencukupi"})
	case errors.Is(err, models.ErrProductNotFound):
		c.JSON(404, gin.H{"success": false, "message": "Item tidak ditemukan"})
	default:
		c.JSON(500, gin.H{"success": false, "message": "Terjadi kesalahan", "error": err.Error()})
	}
}
