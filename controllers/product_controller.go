package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"toko-pos/libs"
	"toko-pos/models"
	"toko-pos/repositories"
	"toko-pos/services"
	"toko-pos/utils"
)

type ProductController struct {
	productRepo *repositories.ProductRepository
	catalog     *services.Catalog
}

func NewProductController(productRepo *repositories.ProductRepository, catalog *services.Catalog) *ProductController {
	return &ProductController{productRepo: productRepo, catalog: catalog}
}

// @Summary List products
// @Description List all products, low-stock first, optionally filtered by name keyword
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param keyword query string false "Name keyword"
// @Success 200 {object} models.Response
// @Router /admin/products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	if err := ctrl.catalog.Err(); err != nil {
		c.JSON(503, gin.H{"success": false, "message": "Gagal memuat data produk", "error": err.Error()})
		return
	}

	products := ctrl.catalog.Filter(c.Query("keyword"))
	c.JSON(200, gin.H{"success": true, "message": "Products retrieved", "data": products})
}

// @Summary Get product
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.productRepo.GetProduct(c.Request.Context(), c.Param("id"))
	if errors.Is(err, models.ErrProductNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Produk tidak ditemukan"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Gagal memuat data produk", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// @Summary Create product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SaveProductRequest true "Product"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.SaveProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Lengkapi semua data dengan benar!", "error": err.Error()})
		return
	}

	product := &models.Product{
		Name:          req.Name,
		Category:      req.Category,
		PurchasePrice: *req.PurchasePrice,
		SellingPrice:  *req.SellingPrice,
		Stock:         *req.Stock,
		ImageURL:      req.ImageURL,
	}

	if err := ctrl.productRepo.CreateProduct(c.Request.Context(), product); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Gagal menyimpan produk", "error": err.Error()})
		return
	}

	invalidateStatsCache()
	c.JSON(201, gin.H{"success": true, "message": "Produk baru berhasil ditambahkan", "data": product})
}

// @Summary Update product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.SaveProductRequest true "Product"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.SaveProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Lengkapi semua data dengan benar!", "error": err.Error()})
		return
	}

	product := &models.Product{
		ID:            c.Param("id"),
		Name:          req.Name,
		Category:      req.Category,
		PurchasePrice: *req.PurchasePrice,
		SellingPrice:  *req.SellingPrice,
		Stock:         *req.Stock,
		ImageURL:      req.ImageURL,
	}

	err := ctrl.productRepo.UpdateProduct(c.Request.Context(), product)
	if errors.Is(err, models.ErrProductNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Produk tidak ditemukan"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Gagal menyimpan produk", "error": err.Error()})
		return
	}

	invalidateStatsCache()
	c.JSON(200, gin.H{"success": true, "message": "Produk berhasil diperbarui", "data": product})
}

// @Summary Delete product
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	err := ctrl.productRepo.DeleteProduct(c.Request.Context(), c.Param("id"))
	if errors.Is(err, models.ErrProductNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Produk tidak ditemukan"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Gagal menghapus produk", "error": err.Error()})
		return
	}

	invalidateStatsCache()
	c.JSON(200, gin.H{"success": true, "message": "Produk berhasil dihapus"})
}

// @Summary Upload product image
// @Description Upload an image and get back its hosted URL
// @Tags Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} models.Response
// @Router /admin/products/image [post]
func (ctrl *ProductController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "File gambar wajib diunggah"})
		return
	}

	localPath, err := utils.SaveTempImage(c, fileHeader)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "File harus berupa gambar!", "error": err.Error()})
		return
	}

	imageURL, err := libs.UploadToCloudinary(c.Request.Context(), localPath)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Gagal mengunggah gambar", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Gambar berhasil diunggah", "data": gin.H{"image_url": imageURL}})
}
