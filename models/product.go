package models

import "time"

// LowStockThreshold is the fixed stock level at or below which a product
// counts as low stock.
const LowStockThreshold = 10

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	PurchasePrice int       `json:"purchase_price"`
	SellingPrice  int       `json:"selling_price"`
	Stock         int       `json:"stock"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (p Product) IsLowStock() bool {
	return p.Stock <= LowStockThreshold
}
