package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"toko-pos/models"
)

type SaleRepository struct{}

func NewSaleRepository() *SaleRepository {
	return &SaleRepository{}
}

// CreateSale commits one sale in a single database transaction: the
// transaction record, one frozen line item per cart line, and a conditional
// stock decrement per product. The decrement only applies while stock
// covers the quantity; a miss aborts the whole write, so two registers can
// never oversell the last units and partial sales are never observable.
func (r *SaleRepository) CreateSale(ctx context.Context, sale models.Sale) (string, error) {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin checkout: %w", err)
	}
	defer tx.Rollback(ctx)

	var transactionID string
	err = tx.QueryRow(ctx, `
		INSERT INTO transactions (total_price, cash_received, change, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, sale.TotalPrice, sale.CashReceived, sale.Change, sale.Operator).Scan(&transactionID)
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}

	for _, item := range sale.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO transaction_items
				(transaction_id, product_id, product_name, quantity, price, purchase_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, transactionID, item.ProductID, item.Name, item.Quantity, item.Price,
			item.PurchasePrice, item.Subtotal)
		if err != nil {
			return "", fmt.Errorf("insert transaction item: %w", err)
		}

		tag, err := tx.Exec(ctx, `
			UPDATE products SET stock = stock - $1, updated_at = now()
			WHERE id = $2 AND stock >= $1
		`, item.Quantity, item.ProductID)
		if err != nil {
			return "", fmt.Errorf("decrement stock: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return "", fmt.Errorf("%s: %w", item.Name, models.ErrInsufficientStock)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit checkout: %w", err)
	}

	return transactionID, nil
}

func (r *SaleRepository) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	// A malformed id can never match, and would otherwise fail the uuid cast.
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.ErrTransactionNotFound
	}

	var t models.Transaction
	err := models.DB.QueryRow(ctx, `
		SELECT id, date, total_price, cash_received, change, user_id
		FROM transactions WHERE id = $1
	`, id).Scan(&t.ID, &t.Date, &t.TotalPrice, &t.CashReceived, &t.Change, &t.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SaleRepository) GetTransactionItems(ctx context.Context, transactionID string) ([]models.TransactionItem, error) {
	rows, err := models.DB.Query(ctx, `
		SELECT id, transaction_id, product_id, product_name, quantity, price, purchase_price, subtotal, date
		FROM transaction_items WHERE transaction_id = $1
	`, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.TransactionItem{}
	for rows.Next() {
		var it models.TransactionItem
		err = rows.Scan(&it.ID, &it.TransactionID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.Price, &it.PurchasePrice, &it.Subtotal, &it.Date)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListTransactionsByDay returns the transactions of one calendar day,
// newest first.
func (r *SaleRepository) ListTransactionsByDay(ctx context.Context, day time.Time) ([]models.Transaction, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rows, err := models.DB.Query(ctx, `
		SELECT id, date, total_price, cash_received, change, user_id
		FROM transactions
		WHERE date >= $1 AND date < $2
		ORDER BY date DESC
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err = rows.Scan(&t.ID, &t.Date, &t.TotalPrice, &t.CashReceived, &t.Change, &t.UserID)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// PeriodReport aggregates revenue, cost of goods, and profit over line
// items in [start, end). A keyword narrows to matching product names or
// transaction ids. A zero end leaves the period open.
func (r *SaleRepository) PeriodReport(ctx context.Context, start, end time.Time, keyword string) (models.PeriodReport, error) {
	query := `
		SELECT COALESCE(SUM(subtotal), 0), COALESCE(SUM(purchase_price * quantity), 0)
		FROM transaction_items
		WHERE date >= $1
	`
	args := []interface{}{start}

	if !end.IsZero() {
		query += fmt.Sprintf(" AND date < $%d", len(args)+1)
		args = append(args, end)
	}
	if keyword != "" {
		query += fmt.Sprintf(" AND (product_name ILIKE $%d OR transaction_id::text ILIKE $%d)", len(args)+1, len(args)+1)
		args = append(args, "%"+keyword+"%")
	}

	var report models.PeriodReport
	if err := models.DB.QueryRow(ctx, query, args...).Scan(&report.Revenue, &report.COGS); err != nil {
		return models.PeriodReport{}, err
	}
	report.Profit = report.Revenue - report.COGS
	return report, nil
}

// TopProducts ranks products sold in [start, end) by quantity.
func (r *SaleRepository) TopProducts(ctx context.Context, start, end time.Time, keyword string, limit int) ([]models.TopProduct, error) {
	query := `
		SELECT product_name, SUM(quantity), SUM(subtotal)
		FROM transaction_items
		WHERE date >= $1
	`
	args := []interface{}{start}

	if !end.IsZero() {
		query += fmt.Sprintf(" AND date < $%d", len(args)+1)
		args = append(args, end)
	}
	if keyword != "" {
		query += fmt.Sprintf(" AND (product_name ILIKE $%d OR transaction_id::text ILIKE $%d)", len(args)+1, len(args)+1)
		args = append(args, "%"+keyword+"%")
	}

	query += fmt.Sprintf(" GROUP BY product_name ORDER BY SUM(quantity) DESC LIMIT $%d", len(args)+1)
	args = append(args, limit)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	top := []models.TopProduct{}
	for rows.Next() {
		var p models.TopProduct
		if err := rows.Scan(&p.Name, &p.Quantity, &p.Revenue); err != nil {
			return nil, err
		}
		top = append(top, p)
	}
	return top, rows.Err()
}

// TodaySummary returns today's transaction count, revenue, and the most
// recent transactions for the dashboard.
func (r *SaleRepository) TodaySummary(ctx context.Context, recentLimit int) (count, revenue int, recent []models.Transaction, err error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	err = models.DB.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_price), 0)
		FROM transactions WHERE date >= $1
	`, start).Scan(&count, &revenue)
	if err != nil {
		return 0, 0, nil, err
	}

	rows, err := models.DB.Query(ctx, `
		SELECT id, date, total_price, cash_received, change, user_id
		FROM transactions
		WHERE date >= $1
		ORDER BY date DESC
		LIMIT $2
	`, start, recentLimit)
	if err != nil {
		return 0, 0, nil, err
	}
	defer rows.Close()

	recent = []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err = rows.Scan(&t.ID, &t.Date, &t.TotalPrice, &t.CashReceived, &t.Change, &t.UserID)
		if err != nil {
			return 0, 0, nil, err
		}
		recent = append(recent, t)
	}
	return count, revenue, recent, rows.Err()
}
