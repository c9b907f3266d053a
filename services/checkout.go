package services

import (
	"context"

	"toko-pos/models"
)

// OfflineOperator is the attribution used when no operator identity is
// available at checkout time.
const OfflineOperator = "kasir-offline"

// SaleStore commits a sale as a single all-or-nothing write: the
// transaction record, its line items, and a conditional stock decrement per
// product. It returns the store-assigned transaction id. A decrement that
// would go negative must fail the whole write with ErrInsufficientStock.
type SaleStore interface {
	CreateSale(ctx context.Context, sale models.Sale) (string, error)
}

// CheckoutEngine turns a populated cart into a committed transaction, or
// fails leaving cart and store untouched.
type CheckoutEngine struct {
	store SaleStore
}

func NewCheckoutEngine(store SaleStore) *CheckoutEngine {
	return &CheckoutEngine{store: store}
}

// Checkout validates payment, commits the sale atomically, and empties the
// cart on success. On any failure the cart keeps its items so the operation
// can be retried as-is.
func (e *CheckoutEngine) Checkout(ctx context.Context, cart *Cart, cashReceived int, operator string) (string, error) {
	items := cart.Items()
	if len(items) == 0 {
		return "", models.ErrEmptyCart
	}

	total := 0
	for _, item := range items {
		total += item.Subtotal
	}

	if cashReceived < total {
		return "", models.ErrInsufficientPayment
	}

	if operator == "" {
		operator = OfflineOperator
	}

	sale := models.Sale{
		TotalPrice:   total,
		CashReceived: cashReceived,
		Change:       cashReceived - total,
		Operator:     operator,
		Items:        items,
	}

	id, err := e.store.CreateSale(ctx, sale)
	if err != nil {
		return "", err
	}

	cart.Clear()
	return id, nil
}
