package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toko-pos/models"
)

func testCatalog(t *testing.T, products ...models.Product) *Catalog {
	t.Helper()
	catalog := NewCatalog(&stubLister{products: products})
	require.NoError(t, catalog.Refresh(context.Background()))
	return catalog
}

func TestCartAddMergesExistingLine(t *testing.T) {
	catalog := testCatalog(t,
		models.Product{ID: "p1", Name: "Gula", SellingPrice: 15000, Stock: 10},
		models.Product{ID: "p2", Name: "Beras", SellingPrice: 12000, Stock: 10},
	)
	cart := NewCart(catalog)

	require.NoError(t, cart.Add("p1"))
	require.NoError(t, cart.Add("p2"))
	require.NoError(t, cart.Add("p1"))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 30000, items[0].Subtotal)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 42000, cart.Total())
}

func TestCartAddUnknownProductIsNoOp(t *testing.T) {
	cart := NewCart(testCatalog(t))

	require.NoError(t, cart.Add("missing"))
	assert.Equal(t, 0, cart.Len())
}

func TestCartIncrementBoundedByStock(t *testing.T) {
	catalog := testCatalog(t,
		models.Product{ID: "p1", Name: "Gula", SellingPrice: 15000, Stock: 2},
	)
	cart := NewCart(catalog)

	require.NoError(t, cart.Add("p1"))
	require.NoError(t, cart.Increment(0))

	err := cart.Increment(0)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	assert.Equal(t, 2, cart.Items()[0].Quantity)
}

func TestCartAddBoundedByStock(t *testing.T) {
	catalog := testCatalog(t,
		models.Product{ID: "p1", Name: "Gula", SellingPrice: 15000, Stock: 1},
	)
	cart := NewCart(catalog)

	require.NoError(t, cart.Add("p1"))
	assert.ErrorIs(t, cart.Add("p1"), models.ErrInsufficientStock)
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestCartDecrementRemovesLineAtQuantityOne(t *testing.T) {
	catalog := testCatalog(t,
		models.Product{ID: "p1", Name: "Gula", SellingPrice: 15000, Stock: 10},
	)
	cart := NewCart(catalog)

	require.NoError(t, cart.Add("p1"))
	require.NoError(t, cart.Increment(0))
	require.NoError(t, cart.Decrement(0))
	assert.Equal(t, 1, cart.Items()[0].Quantity)

	require.NoError(t, cart.Decrement(0))
	assert.Equal(t, 0, cart.Len())
}

func TestCartRemoveAndClear(t *testing.T) {
	catalog := testCatalog(t,
		models.Product{ID: "p1", Name: "Gula", SellingPrice: 15000, Stock: 10},
		models.Product{ID: "p2", Name: "Beras", SellingPrice: 12000, Stock: 10},
	)
	cart := NewCart(catalog)

	require.NoError(t, cart.Add("p1"))
	require.NoError(t, cart.Add("p2"))

	require.NoError(t, cart.Remove(0))
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)

	cart.Clear()
	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, 0, cart.Total())
}

func TestCartIndexOutOfRange(t *testing.T) {
	cart := NewCart(testCatalog(t))

	assert.ErrorIs(t, cart.Increment(0), models.ErrProductNotFound)
	assert.ErrorIs(t, cart.Decrement(-1), models.ErrProductNotFound)
	assert.ErrorIs(t, cart.Remove(3), models.ErrProductNotFound)
}
