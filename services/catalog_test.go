package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toko-pos/models"
)

type stubLister struct {
	products []models.Product
	err      error
}

func (s *stubLister) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products, s.err
}

func TestCatalogRefreshSortsLowStockFirst(t *testing.T) {
	lister := &stubLister{products: []models.Product{
		{ID: "p1", Name: "Beras", Stock: 50},
		{ID: "p2", Name: "Gula", Stock: 5},
		{ID: "p3", Name: "Teh", Stock: 3},
	}}
	catalog := NewCatalog(lister)

	require.NoError(t, catalog.Refresh(context.Background()))

	got := catalog.Products()
	require.Len(t, got, 3)
	assert.Equal(t, "Gula", got[0].Name)
	assert.Equal(t, "Teh", got[1].Name)
	assert.Equal(t, "Beras", got[2].Name)
}

func TestCatalogSortIsCaseInsensitive(t *testing.T) {
	lister := &stubLister{products: []models.Product{
		{ID: "p1", Name: "kopi", Stock: 20},
		{ID: "p2", Name: "Beras", Stock: 20},
		{ID: "p3", Name: "GULA", Stock: 20},
	}}
	catalog := NewCatalog(lister)

	require.NoError(t, catalog.Refresh(context.Background()))

	got := catalog.Products()
	assert.Equal(t, "Beras", got[0].Name)
	assert.Equal(t, "GULA", got[1].Name)
	assert.Equal(t, "kopi", got[2].Name)
}

func TestCatalogFilterMatchesSubstringCaseInsensitive(t *testing.T) {
	lister := &stubLister{products: []models.Product{
		{ID: "p1", Name: "Gula Pasir", Stock: 20},
		{ID: "p2", Name: "Gula Merah", Stock: 20},
		{ID: "p3", Name: "Beras", Stock: 20},
	}}
	catalog := NewCatalog(lister)
	require.NoError(t, catalog.Refresh(context.Background()))

	got := catalog.Filter("gula")
	require.Len(t, got, 2)

	assert.Len(t, catalog.Filter(""), 3)
	assert.Empty(t, catalog.Filter("kopi"))
}

func TestCatalogAvailableSkipsOutOfStock(t *testing.T) {
	lister := &stubLister{products: []models.Product{
		{ID: "p1", Name: "Gula", Stock: 0},
		{ID: "p2", Name: "Beras", Stock: 7},
	}}
	catalog := NewCatalog(lister)
	require.NoError(t, catalog.Refresh(context.Background()))

	got := catalog.Available("")
	require.Len(t, got, 1)
	assert.Equal(t, "Beras", got[0].Name)

	assert.Len(t, catalog.Filter(""), 2)
}

func TestCatalogFailKeepsLastSnapshot(t *testing.T) {
	lister := &stubLister{products: []models.Product{
		{ID: "p1", Name: "Beras", Stock: 50},
	}}
	catalog := NewCatalog(lister)
	require.NoError(t, catalog.Refresh(context.Background()))
	require.NoError(t, catalog.Err())

	lister.err = errors.New("connection lost")
	require.Error(t, catalog.Refresh(context.Background()))

	assert.Error(t, catalog.Err())
	assert.Len(t, catalog.Products(), 1)

	lister.err = nil
	require.NoError(t, catalog.Refresh(context.Background()))
	assert.NoError(t, catalog.Err())
}

func TestCatalogSubscribeAndUnsubscribe(t *testing.T) {
	lister := &stubLister{}
	catalog := NewCatalog(lister)

	calls := 0
	unsubscribe := catalog.Subscribe(func() { calls++ })

	require.NoError(t, catalog.Refresh(context.Background()))
	assert.Equal(t, 1, calls)

	catalog.Fail(errors.New("boom"))
	assert.Equal(t, 2, calls)

	unsubscribe()
	require.NoError(t, catalog.Refresh(context.Background()))
	assert.Equal(t, 2, calls)
}

func TestCatalogGet(t *testing.T) {
	lister := &stubLister{products: []models.Product{
		{ID: "p1", Name: "Beras", Stock: 50},
	}}
	catalog := NewCatalog(lister)
	require.NoError(t, catalog.Refresh(context.Background()))

	product, ok := catalog.Get("p1")
	require.True(t, ok)
	assert.Equal(t, "Beras", product.Name)

	_, ok = catalog.Get("missing")
	assert.False(t, ok)
}
