package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/WaslIoT/wasl_api/internal/models"
	"github.com/WaslIoT/wasl_api/internal/utils"
)

// ProductStore is the repository surface the admin console needs for
// product CRUD.
type ProductStore interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	UpdateStatus(ctx context.Context, id string, isActive bool) error
	Delete(ctx context.Context, id string) error
}

// CategoryGetter resolves a category by id (foreign-key check on writes).
type CategoryGetter interface {
	GetByID(ctx context.Context, id string) (*models.Category, error)
}

// ProductManagementService implements the admin console's product CRUD and
// the active-flag quick toggle.
type ProductManagementService struct {
	productRepo  ProductStore
	categoryRepo CategoryGetter
}

// NewProductManagementService constructs a ProductManagementService.
func NewProductManagementService(productRepo ProductStore, categoryRepo CategoryGetter) *ProductManagementService {
	return &ProductManagementService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// ProductRequest carries the admin form fields for a product write.
// A showPrice=true with a null price is accepted: the price is simply not
// rendered by the storefront.
type ProductRequest struct {
	CategoryID string   `json:"categoryId" binding:"required"`
	ImageURL   string   `json:"imageUrl"`
	NameAr     string   `json:"nameAr" binding:"required"`
	NameEn     string   `json:"nameEn" binding:"required"`
	Price      *float64 `json:"price"`
	ShowPrice  bool     `json:"showPrice"`
	IsActive   bool     `json:"isActive"`
}

// List returns every product, including inactive ones.
func (s *ProductManagementService) List(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.GetAll(ctx)
}

// Create persists a new product after checking the owning category exists.
func (s *ProductManagementService) Create(ctx context.Context, req *ProductRequest) (*models.Product, error) {
	if err := s.checkRequest(ctx, req); err != nil {
		return nil, err
	}

	product := &models.Product{
		CategoryID: req.CategoryID,
		ImageURL:   req.ImageURL,
		NameAr:     req.NameAr,
		NameEn:     req.NameEn,
		Price:      req.Price,
		ShowPrice:  req.ShowPrice,
		IsActive:   req.IsActive,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		log.Error().Err(err).Msg("product create failed")
		return nil, err
	}
	return product, nil
}

// Update edits a product in place.
func (s *ProductManagementService) Update(ctx context.Context, id string, req *ProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	if err := s.checkRequest(ctx, req); err != nil {
		return nil, err
	}

	product.CategoryID = req.CategoryID
	product.ImageURL = req.ImageURL
	product.NameAr = req.NameAr
	product.NameEn = req.NameEn
	product.Price = req.Price
	product.ShowPrice = req.ShowPrice
	product.IsActive = req.IsActive

	if err := s.productRepo.Update(ctx, product); err != nil {
		log.Error().Err(err).Str("product_id", id).Msg("product update failed")
		return nil, err
	}
	return product, nil
}

// ToggleActive flips the active flag (admin quick-action).
func (s *ProductManagementService) ToggleActive(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	product.IsActive = !product.IsActive
	if err := s.productRepo.UpdateStatus(ctx, id, product.IsActive); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product unconditionally.
func (s *ProductManagementService) Delete(ctx context.Context, id string) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrProductNotFound
		}
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

func (s *ProductManagementService) checkRequest(ctx context.Context, req *ProductRequest) error {
	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrCategoryNotFound
		}
		return err
	}
	if req.Price != nil && *req.Price < 0 {
		return errors.New("price must be >= 0")
	}
	return nil
}
