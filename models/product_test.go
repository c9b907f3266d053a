package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLowStock(t *testing.T) {
	assert.True(t, Product{Stock: 0}.IsLowStock())
	assert.True(t, Product{Stock: LowStockThreshold}.IsLowStock())
	assert.False(t, Product{Stock: LowStockThreshold + 1}.IsLowStock())
}
