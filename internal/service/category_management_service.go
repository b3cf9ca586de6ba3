package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/WaslIoT/wasl_api/internal/models"
	"github.com/WaslIoT/wasl_api/internal/utils"
)

// CategoryStore is the repository surface the admin console needs for
// category CRUD.
type CategoryStore interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

// ProductCounter reports how many products reference a category.
type ProductCounter interface {
	CountByCategory(ctx context.Context, categoryID string) (int, error)
}

// CategoryManagementService implements the admin console's category CRUD,
// including the client-side-style referential guard on delete.
type CategoryManagementService struct {
	categoryRepo CategoryStore
	productRepo  ProductCounter
}

// NewCategoryManagementService constructs a CategoryManagementService.
func NewCategoryManagementService(categoryRepo CategoryStore, productRepo ProductCounter) *CategoryManagementService {
	return &CategoryManagementService{categoryRepo: categoryRepo, productRepo: productRepo}
}

// CreateCategoryRequest carries the admin form fields for a new category.
// Order is optional; absent it defaults to the current category count so new
// entries land at the end of the list.
type CreateCategoryRequest struct {
	NameAr   string `json:"nameAr" binding:"required"`
	NameEn   string `json:"nameEn" binding:"required"`
	ImageURL string `json:"imageUrl"`
	IsActive bool   `json:"isActive"`
	Order    *int   `json:"order"`
}

// UpdateCategoryRequest carries the admin form fields for an edit.
type UpdateCategoryRequest struct {
	NameAr   string `json:"nameAr" binding:"required"`
	NameEn   string `json:"nameEn" binding:"required"`
	ImageURL string `json:"imageUrl"`
	IsActive bool   `json:"isActive"`
	Order    int    `json:"order"`
}

// List returns every category, including inactive ones.
func (s *CategoryManagementService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

// Create persists a new category.
func (s *CategoryManagementService) Create(ctx context.Context, req *CreateCategoryRequest) (*models.Category, error) {
	sortOrder := 0
	if req.Order != nil {
		sortOrder = *req.Order
	} else if existing, err := s.categoryRepo.GetAll(ctx); err == nil {
		sortOrder = len(existing)
	}
	if sortOrder < 0 {
		sortOrder = 0
	}

	category := &models.Category{
		NameAr:    req.NameAr,
		NameEn:    req.NameEn,
		ImageURL:  req.ImageURL,
		IsActive:  req.IsActive,
		SortOrder: sortOrder,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		log.Error().Err(err).Msg("category create failed")
		return nil, err
	}
	return category, nil
}

// Update edits a category in place.
func (s *CategoryManagementService) Update(ctx context.Context, id string, req *UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrCategoryNotFound
		}
		return nil, err
	}

	category.NameAr = req.NameAr
	category.NameEn = req.NameEn
	category.ImageURL = req.ImageURL
	category.IsActive = req.IsActive
	category.SortOrder = req.Order
	if category.SortOrder < 0 {
		category.SortOrder = 0
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		log.Error().Err(err).Str("category_id", id).Msg("category update failed")
		return nil, err
	}
	return category, nil
}

// Delete removes a category unless any product still references it. The
// guard runs before the delete so a rejected call performs no mutation.
func (s *CategoryManagementService) Delete(ctx context.Context, id string) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrCategoryNotFound
		}
		return err
	}

	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.ErrCategoryInUse
	}

	return s.categoryRepo.Delete(ctx, id)
}
