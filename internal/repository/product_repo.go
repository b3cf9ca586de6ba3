package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/WaslIoT/wasl_api/internal/models"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetAll returns every product ordered by creation time descending,
// including inactive ones (admin view).
func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	const q = `SELECT * FROM products ORDER BY created_at DESC`
	var products []models.Product
	if err := r.db.SelectContext(ctx, &products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// GetActive returns active products ordered by creation time descending
// (storefront view).
func (r *ProductRepository) GetActive(ctx context.Context) ([]models.Product, error) {
	const q = `SELECT * FROM products WHERE is_active = true ORDER BY created_at DESC`
	var products []models.Product
	if err := r.db.SelectContext(ctx, &products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE id = $1 LIMIT 1`
	var p models.Product
	if err := r.db.GetContext(ctx, &p, q, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// CountByCategory returns the number of products referencing a category.
// Used by the category delete guard.
func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	const q = `SELECT COUNT(1) FROM products WHERE category_id = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, q, categoryID); err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a new product with a generated id.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	product.ID = uuid.New().String()
	const q = `
		INSERT INTO products (id, category_id, image_url, name_ar, name_en, price, show_price, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`
	return r.db.QueryRowxContext(ctx, q,
		product.ID,
		product.CategoryID,
		product.ImageURL,
		product.NameAr,
		product.NameEn,
		product.Price,
		product.ShowPrice,
		product.IsActive,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
}

// Update updates an existing product in place.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	const q = `
		UPDATE products
		SET category_id = $2, image_url = $3, name_ar = $4, name_en = $5,
		    price = $6, show_price = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	return r.db.QueryRowxContext(ctx, q,
		product.ID,
		product.CategoryID,
		product.ImageURL,
		product.NameAr,
		product.NameEn,
		product.Price,
		product.ShowPrice,
		product.IsActive,
	).Scan(&product.UpdatedAt)
}

// UpdateStatus sets the active flag of a product (admin quick-action).
func (r *ProductRepository) UpdateStatus(ctx context.Context, id string, isActive bool) error {
	const q = `UPDATE products SET is_active = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, isActive)
	return err
}

// Delete removes a product by id.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM products WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
