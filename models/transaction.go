package models

import "time"

// Transaction is the append-only sale record. Line items carry frozen
// copies of product name and prices so later catalog edits never change
// what a receipt or report shows.
type Transaction struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	TotalPrice   int       `json:"total_price"`
	CashReceived int       `json:"cash_received"`
	Change       int       `json:"change"`
	UserID       string    `json:"user_id"`
}

type TransactionItem struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity"`
	Price         int       `json:"price"`
	PurchasePrice int       `json:"purchase_price"`
	Subtotal      int       `json:"subtotal"`
	Date          time.Time `json:"date"`
}

// Sale is the fully validated input for one atomic checkout write.
type Sale struct {
	TotalPrice   int
	CashReceived int
	Change       int
	Operator     string
	Items        []CartItem
}

// CartItem is one pending line of an in-progress sale. Price and cost are
// snapshots taken when the item was added.
type CartItem struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	PurchasePrice int    `json:"purchase_price"`
	Quantity      int    `json:"quantity"`
	Subtotal      int    `json:"subtotal"`
}
