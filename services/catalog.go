package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"toko-pos/models"
)

// ProductLister is the read side of the product store the catalog mirrors.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// Catalog is a local mirror of the product collection. Every refresh fully
// replaces the snapshot; consumers only ever see the most recent one.
// Low-stock products sort before the rest, each group alphabetically.
type Catalog struct {
	lister ProductLister

	mu          sync.RWMutex
	products    []models.Product
	loadErr     error
	subscribers map[int]func()
	nextSubID   int
}

func NewCatalog(lister ProductLister) *Catalog {
	return &Catalog{
		lister:      lister,
		subscribers: make(map[int]func()),
	}
}

// Refresh replaces the snapshot with the store's current product list and
// notifies subscribers. A successful refresh clears any prior failure.
func (c *Catalog) Refresh(ctx context.Context) error {
	products, err := c.lister.ListProducts(ctx)
	if err != nil {
		c.Fail(err)
		return err
	}

	sortProducts(products)

	c.mu.Lock()
	c.products = products
	c.loadErr = nil
	c.mu.Unlock()

	c.notify()
	return nil
}

// Fail marks the catalog as stale after a subscription or load failure.
// The last-good snapshot stays readable, but Err reports the failure so
// consumers can distinguish it from fresh data.
func (c *Catalog) Fail(err error) {
	c.mu.Lock()
	c.loadErr = err
	c.mu.Unlock()

	c.notify()
}

func (c *Catalog) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadErr
}

// Products returns the full sorted snapshot.
func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Filter returns products whose name contains the keyword,
// case-insensitive. An empty keyword returns everything.
func (c *Catalog) Filter(keyword string) []models.Product {
	return c.filter(keyword, false)
}

// Available is Filter restricted to products with stock on hand, for the
// POS selector grid.
func (c *Catalog) Available(keyword string) []models.Product {
	return c.filter(keyword, true)
}

func (c *Catalog) filter(keyword string, onlyInStock bool) []models.Product {
	keyword = strings.ToLower(keyword)

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []models.Product{}
	for _, p := range c.products {
		if onlyInStock && p.Stock <= 0 {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(p.Name), keyword) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get looks up a product by id in the current snapshot.
func (c *Catalog) Get(productID string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == productID {
			return p, true
		}
	}
	return models.Product{}, false
}

// Subscribe registers fn to run after every refresh or failure tick, so
// derived views never render stale past the next update. The returned
// function removes the subscription.
func (c *Catalog) Subscribe(fn func()) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

func (c *Catalog) notify() {
	c.mu.RLock()
	fns := make([]func(), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		fns = append(fns, fn)
	}
	c.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

func sortProducts(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		iLow, jLow := products[i].IsLowStock(), products[j].IsLowStock()
		if iLow != jLow {
			return iLow
		}
		return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
	})
}
