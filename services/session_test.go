package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toko-pos/models"
)

func gridProducts(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{
			ID:    fmt.Sprintf("p%02d", i),
			Name:  fmt.Sprintf("Produk %02d", i),
			Stock: 20,
		}
	}
	return products
}

func TestGridViewPagesThroughCatalog(t *testing.T) {
	catalog := testCatalog(t, gridProducts(25)...)
	grid := NewGridView(catalog, 10)

	items, page, totalPages, totalItems := grid.Current()
	assert.Equal(t, 1, page)
	assert.Equal(t, 3, totalPages)
	assert.Equal(t, 25, totalItems)
	assert.Len(t, items, 10)

	grid.SetPage(3)
	items, page, _, _ = grid.Current()
	assert.Equal(t, 3, page)
	assert.Len(t, items, 5)
}

func TestGridViewClampsPagePastEnd(t *testing.T) {
	catalog := testCatalog(t, gridProducts(25)...)
	grid := NewGridView(catalog, 10)

	grid.SetPage(5)
	items, page, totalPages, _ := grid.Current()
	assert.Equal(t, 3, page)
	assert.Equal(t, 3, totalPages)
	assert.Len(t, items, 5)

	// The clamp sticks for the next render.
	_, page, _, _ = grid.Current()
	assert.Equal(t, 3, page)
}

func TestGridViewKeywordChangeResetsPage(t *testing.T) {
	catalog := testCatalog(t, gridProducts(25)...)
	grid := NewGridView(catalog, 10)

	grid.SetPage(2)
	grid.SetKeyword("produk 0")
	items, page, _, totalItems := grid.Current()
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, totalItems)
	assert.Len(t, items, 10)

	// Re-submitting the same keyword keeps the page.
	grid.SetPage(1)
	grid.SetKeyword("produk 0")
	_, page, _, _ = grid.Current()
	assert.Equal(t, 1, page)
}

func TestGridViewEmptyResult(t *testing.T) {
	catalog := testCatalog(t, gridProducts(5)...)
	grid := NewGridView(catalog, 10)

	grid.SetKeyword("tidak ada")
	items, page, totalPages, totalItems := grid.Current()
	assert.Empty(t, items)
	assert.Equal(t, 1, page)
	assert.Equal(t, 1, totalPages)
	assert.Equal(t, 0, totalItems)
}

func TestSessionManagerPerOperator(t *testing.T) {
	catalog := testCatalog(t, gridProducts(5)...)
	manager := NewSessionManager(catalog, 8)

	first := manager.Get("kasir-a")
	second := manager.Get("kasir-b")
	require.NotSame(t, first, second)

	require.NoError(t, first.Cart.Add("p00"))
	assert.Equal(t, 1, first.Cart.Len())
	assert.Equal(t, 0, second.Cart.Len())

	assert.Same(t, first, manager.Get("kasir-a"))

	manager.End("kasir-a")
	assert.NotSame(t, first, manager.Get("kasir-a"))
}
