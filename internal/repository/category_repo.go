package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/WaslIoT/wasl_api/internal/models"
)

// CategoryRepository handles data access for categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetAll returns every category ordered by sort_order ascending, including
// inactive ones (admin view).
func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	const q = `SELECT * FROM categories ORDER BY sort_order ASC, created_at ASC`
	var categories []models.Category
	if err := r.db.SelectContext(ctx, &categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetActive returns active categories ordered by sort_order ascending
// (storefront view).
func (r *CategoryRepository) GetActive(ctx context.Context) ([]models.Category, error) {
	const q = `SELECT * FROM categories WHERE is_active = true ORDER BY sort_order ASC, created_at ASC`
	var categories []models.Category
	if err := r.db.SelectContext(ctx, &categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns a single category by id.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	const q = `SELECT * FROM categories WHERE id = $1 LIMIT 1`
	var c models.Category
	if err := r.db.GetContext(ctx, &c, q, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new category with a generated id.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	category.ID = uuid.New().String()
	const q = `
		INSERT INTO categories (id, name_ar, name_en, image_url, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`
	return r.db.QueryRowxContext(ctx, q,
		category.ID,
		category.NameAr,
		category.NameEn,
		category.ImageURL,
		category.IsActive,
		category.SortOrder,
	).Scan(&category.CreatedAt, &category.UpdatedAt)
}

// Update updates an existing category in place.
func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	const q = `
		UPDATE categories
		SET name_ar = $2, name_en = $3, image_url = $4, is_active = $5,
		    sort_order = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	return r.db.QueryRowxContext(ctx, q,
		category.ID,
		category.NameAr,
		category.NameEn,
		category.ImageURL,
		category.IsActive,
		category.SortOrder,
	).Scan(&category.UpdatedAt)
}

// Delete removes a category by id. The referential guard lives in the
// service layer; this is an unconditional delete.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM categories WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
