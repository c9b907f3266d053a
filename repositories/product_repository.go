package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"toko-pos/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `id, name, category, purchase_price, selling_price, stock, image_url, created_at, updated_at`

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.PurchasePrice, &p.SellingPrice,
		&p.Stock, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// ListProducts returns every product. Ordering is left to the catalog,
// which re-sorts on each refresh anyway.
func (r *ProductRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := models.DB.Query(ctx, `SELECT `+productColumns+` FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	// A malformed id can never match, and would otherwise fail the uuid cast.
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.ErrProductNotFound
	}

	row := models.DB.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	rows, err := models.DB.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, category, purchase_price, selling_price, stock, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return models.DB.QueryRow(ctx, query,
		product.Name, product.Category, product.PurchasePrice, product.SellingPrice,
		product.Stock, product.ImageURL,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	if _, err := uuid.Parse(product.ID); err != nil {
		return models.ErrProductNotFound
	}

	query := `UPDATE products SET name = $1, category = $2, purchase_price = $3,
	          selling_price = $4, stock = $5, image_url = $6, updated_at = $7 WHERE id = $8`
	tag, err := models.DB.Exec(ctx, query,
		product.Name, product.Category, product.PurchasePrice, product.SellingPrice,
		product.Stock, product.ImageURL, time.Now(), product.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return models.ErrProductNotFound
	}

	tag, err := models.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) CountProducts(ctx context.Context) (total, lowStock int, err error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE stock <= $1) FROM products`
	err = models.DB.QueryRow(ctx, query, models.LowStockThreshold).Scan(&total, &lowStock)
	return total, lowStock, err
}
