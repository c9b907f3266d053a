package services

import (
	"context"
	"log"

	"toko-pos/models"
)

// ProductGetter reads current product rows by id, bypassing the catalog
// snapshot so alert decisions see post-checkout stock immediately.
type ProductGetter interface {
	GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error)
}

// StockAlerter mails the owner when a sale pushes products to or below the
// low-stock threshold. Best effort only: a failed mail is logged, never
// surfaced to the cashier.
type StockAlerter struct {
	products ProductGetter
	email    *models.EmailService
	to       string
}

func NewStockAlerter(products ProductGetter, email *models.EmailService, to string) *StockAlerter {
	return &StockAlerter{products: products, email: email, to: to}
}

// NotifySoldProducts checks the products touched by a sale and sends one
// alert covering every one now at low stock.
func (a *StockAlerter) NotifySoldProducts(ctx context.Context, productIDs []string) {
	if a == nil || a.email == nil || a.to == "" || len(productIDs) == 0 {
		return
	}

	products, err := a.products.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		log.Printf("Low stock check failed: %v", err)
		return
	}

	low := []models.Product{}
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	if len(low) == 0 {
		return
	}

	if err := a.email.SendLowStockAlert(a.to, low); err != nil {
		log.Printf("Low stock alert mail failed: %v", err)
	}
}
