package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/WaslIoT/wasl_api/internal/i18n"
	"github.com/WaslIoT/wasl_api/internal/models"
)

// ActiveCategorySource provides the active categories, sort-ordered.
type ActiveCategorySource interface {
	GetActive(ctx context.Context) ([]models.Category, error)
}

// ActiveProductSource provides the active products, newest first.
type ActiveProductSource interface {
	GetActive(ctx context.Context) ([]models.Product, error)
}

// CatalogService keeps the storefront's in-memory snapshot of active
// categories and products. The snapshot is replaced wholesale on every
// Refresh; there is no incremental merge and no cache policy beyond
// "last fetch wins".
type CatalogService struct {
	categoryRepo ActiveCategorySource
	productRepo  ActiveProductSource

	mu         sync.RWMutex
	categories []models.Category
	products   []models.Product
}

// NewCatalogService constructs a CatalogService with an empty snapshot.
// Call Refresh before serving storefront traffic.
func NewCatalogService(categoryRepo ActiveCategorySource, productRepo ActiveProductSource) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Refresh re-issues both fetches and swaps the snapshot. A failure leaves
// the previous snapshot untouched.
func (s *CatalogService) Refresh(ctx context.Context) error {
	categories, err := s.categoryRepo.GetActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("catalog refresh: categories fetch failed")
		return err
	}
	products, err := s.productRepo.GetActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("catalog refresh: products fetch failed")
		return err
	}

	s.mu.Lock()
	s.categories = categories
	s.products = products
	s.mu.Unlock()

	log.Debug().Int("categories", len(categories)).Int("products", len(products)).Msg("catalog snapshot refreshed")
	return nil
}

// ListCategories returns the snapshot's categories.
func (s *CatalogService) ListCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// ListProducts returns the snapshot's products.
func (s *CatalogService) ListProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductsByCategory filters the snapshot by owning category. Pure filter
// over the in-memory list; never triggers a re-fetch.
func (s *CatalogService) ProductsByCategory(categoryID string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0)
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// CountByCategory returns how many snapshot products belong to a category.
func (s *CatalogService) CountByCategory(categoryID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count
}

// CategoryName resolves a category's display name for a locale. Category is
// the sole owner of its display name; products and orders hold only the id.
func (s *CatalogService) CategoryName(categoryID string, locale i18n.Locale) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == categoryID {
			return c.Name(locale.IsArabic()), true
		}
	}
	return "", false
}
