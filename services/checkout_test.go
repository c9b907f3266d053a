package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toko-pos/models"
)

// fakeSaleStore commits against an in-memory stock map with the same
// all-or-nothing rule as the real store: one short line aborts whole sale.
type fakeSaleStore struct {
	stock map[string]int
	calls int
	err   error
	sales []models.Sale
}

func (s *fakeSaleStore) CreateSale(ctx context.Context, sale models.Sale) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}

	for _, item := range sale.Items {
		if s.stock[item.ProductID] < item.Quantity {
			return "", fmt.Errorf("%s: %w", item.Name, models.ErrInsufficientStock)
		}
	}
	for _, item := range sale.Items {
		s.stock[item.ProductID] -= item.Quantity
	}

	s.sales = append(s.sales, sale)
	return fmt.Sprintf("trx-%d", len(s.sales)), nil
}

func TestCheckoutCommitsSaleAndClearsCart(t *testing.T) {
	catalog := testCatalog(t,
		models.Product{ID: "p1", Name: "Gula", SellingPrice: 15000, Stock: 10},
		models.Product{ID: "p2", Name: "Beras", SellingPrice: 5000, Stock: 10},
	)
	cart := NewCart(catalog)
	require.NoError(t, cart.Add("p1"))
	require.NoError(t, cart.Add("p2"))

	store := &fakeSaleStore{stock: map[string]int{"p1": 10, "p2": 10}}
	engine := NewCheckoutEngine(store)

	id, err := engine.Checkout(context.Background(), cart, 25000, "april@tokoapril.id")
	require.NoError(t, err)
	assert.Equal(t, "trx-1", id)

	require.Len(t, store.sales, 1)
	sale := store.sales[0]
	assert.Equal(t, 20000, sale.TotalPrice)
	assert.Equal(t, 25000, sale.CashReceived)
	assert.Equal(t, 5000, sale.Change)
	assert.Equal(t, "april@tokoapril.id", sale.Operator)
	assert.Len(t, sale.Items, 2)

	assert.Equal(t, 9, store.stock["p1"])
	assert.Equal(t, 0, cart.Len())
}

func TestCheckoutEmptyCart(t *testing.T) {
	cart := NewCart(testCatalog(t))
	store := &fakeSaleStore{stock: map[string]int{}}
	engine := NewCheckoutEngine(store)

	_, err := engine.Checkout(context.Background(), cart, 10000, "kasir")
	assert.ErrorIs(t, err, models.ErrEmptyCart)
	assert.Equal(t, 0, store.calls)
}

func TestCheckoutInsufficientCash(t *testing.T) {
	catalog := testCatalog(t,
		models.Product{ID: "p1", Name: "Gula", SellingPrice: 15000, Stock: 10},
	)
	cart := NewCart(catalog)
	require.NoError(t, cart.Add("p1"))

	store := &fakeSaleStore{stock: map[string]int{"p1": 10}}
	engine := NewCheckoutEngine(store)

	_, err := engine.Checkout(context.Background(), cart, 14999, "kasir")
	assert.ErrorIs(t, err, models.ErrInsufficientPayment)
	assert.Equal(t, 0, store.calls)
	assert.Equal(t, 1, cart.Len())
}

func TestCheckoutStoreFailureKeepsCart(t *testing.T) {
	catalog := testCatalog(t,
		models.Product{ID: "p1", Name: "Gula", SellingPrice: 15000, Stock: 10},
	)
	cart := NewCart(catalog)
	require.NoError(t, cart.Add("p1"))

	store := &fakeSaleStore{stock: map[string]int{"p1": 10}, err: errors.New("write failed")}
	engine := NewCheckoutEngine(store)

	_, err := engine.Checkout(context.Background(), cart, 20000, "kasir")
	require.Error(t, err)
	assert.Equal(t, 1, cart.Len())
}

func TestCheckoutShortStockAbortsWholeSale(t *testing.T) {
	catalog := testCatalog(t,
		models.Product{ID: "p1", Name: "Gula", SellingPrice: 15000, Stock: 10},
		models.Product{ID: "p2", Name: "Beras", SellingPrice: 5000, Stock: 10},
	)
	cart := NewCart(catalog)
	require.NoError(t, cart.Add("p1"))
	require.NoError(t, cart.Add("p2"))

	// Catalog says 10, but another register already sold p2 out.
	store := &fakeSaleStore{stock: map[string]int{"p1": 10, "p2": 0}}
	engine := NewCheckoutEngine(store)

	_, err := engine.Checkout(context.Background(), cart, 20000, "kasir")
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	assert.Equal(t, 10, store.stock["p1"])
	assert.Equal(t, 0, store.stock["p2"])
	assert.Equal(t, 2, cart.Len())
}

func TestCheckoutZeroTotalAcceptsZeroCash(t *testing.T) {
	catalog := testCatalog(t,
		models.Product{ID: "p1", Name: "Kantong Kresek", SellingPrice: 0, Stock: 10},
	)
	cart := NewCart(catalog)
	require.NoError(t, cart.Add("p1"))

	store := &fakeSaleStore{stock: map[string]int{"p1": 10}}
	engine := NewCheckoutEngine(store)

	_, err := engine.Checkout(context.Background(), cart, 0, "kasir")
	require.NoError(t, err)

	require.Len(t, store.sales, 1)
	assert.Equal(t, 0, store.sales[0].TotalPrice)
	assert.Equal(t, 0, store.sales[0].Change)
	assert.Equal(t, 0, cart.Len())
}

func TestCheckoutFallsBackToOfflineOperator(t *testing.T) {
	catalog := testCatalog(t,
		models.Product{ID: "p1", Name: "Gula", SellingPrice: 15000, Stock: 10},
	)
	cart := NewCart(catalog)
	require.NoError(t, cart.Add("p1"))

	store := &fakeSaleStore{stock: map[string]int{"p1": 10}}
	engine := NewCheckoutEngine(store)

	_, err := engine.Checkout(context.Background(), cart, 15000, "")
	require.NoError(t, err)
	assert.Equal(t, OfflineOperator, store.sales[0].Operator)
}
