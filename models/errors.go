package models

import "errors"

// Business outcomes of the POS flow. These are expected results, returned
// as values and mapped to 4xx responses, never panics.
var (
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrProductNotFound     = errors.New("product not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)
