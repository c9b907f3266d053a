package services

import (
	"sync"

	"toko-pos/models"
)

// Cart holds the lines of one in-progress sale, ordered, unique by product.
// Quantity bumps are checked against the live catalog stock; everything else
// is pure in-memory state that only persists through a checkout commit.
type Cart struct {
	catalog *Catalog

	mu    sync.Mutex
	items []models.CartItem
}

func NewCart(catalog *Catalog) *Cart {
	return &Cart{catalog: catalog}
}

// Add puts one unit of the product in the cart, merging into an existing
// line if present. Unknown products are ignored: the grid only offers
// products the catalog knows about, so a miss means it was deleted
// mid-session and the add quietly does nothing.
func (c *Cart) Add(productID string) error {
	product, ok := c.catalog.Get(productID)
	if !ok {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			return c.bump(i, product.Stock)
		}
	}

	c.items = append(c.items, models.CartItem{
		ProductID:     product.ID,
		Name:          product.Name,
		Price:         product.SellingPrice,
		PurchasePrice: product.PurchasePrice,
		Quantity:      1,
		Subtotal:      product.SellingPrice,
	})
	return nil
}

// Increment raises the quantity of the line at index by one, bounded by the
// catalog's current stock for that product.
func (c *Cart) Increment(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return models.ErrProductNotFound
	}

	product, ok := c.catalog.Get(c.items[index].ProductID)
	if !ok {
		// Product vanished from the catalog; treat like Add and no-op.
		return nil
	}
	return c.bump(index, product.Stock)
}

// bump applies a +1 with the stock bound. Caller holds the lock.
func (c *Cart) bump(index, stock int) error {
	if c.items[index].Quantity >= stock {
		return models.ErrInsufficientStock
	}
	c.items[index].Quantity++
	c.items[index].Subtotal = c.items[index].Quantity * c.items[index].Price
	return nil
}

// Decrement lowers the quantity by one; a quantity-1 line is removed so the
// cart never holds a zero-quantity item.
func (c *Cart) Decrement(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return models.ErrProductNotFound
	}

	if c.items[index].Quantity <= 1 {
		c.items = append(c.items[:index], c.items[index+1:]...)
		return nil
	}

	c.items[index].Quantity--
	c.items[index].Subtotal = c.items[index].Quantity * c.items[index].Price
	return nil
}

// Remove deletes the line at index unconditionally.
func (c *Cart) Remove(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return models.ErrProductNotFound
	}

	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// Clear empties the cart. Asking the user first is the caller's concern.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Subtotal
	}
	return total
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
