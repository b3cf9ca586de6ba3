package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/WaslIoT/wasl_api/internal/service"
	"github.com/WaslIoT/wasl_api/internal/utils"
	"github.com/WaslIoT/wasl_api/pkg/countries"
)

// CatalogHandler serves the public storefront catalog endpoints backed by
// the in-memory snapshot.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// categoryView decorates a category with its product count for the
// storefront mega-menu.
type categoryView struct {
	ID           string `json:"id"`
	NameAr       string `json:"nameAr"`
	NameEn       string `json:"nameEn"`
	ImageURL     string `json:"imageUrl"`
	Order        int    `json:"order"`
	ProductCount int    `json:"productCount"`
}

// GetCategories handles GET /v1/catalog/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	cats := h.catalog.ListCategories()
	views := make([]categoryView, 0, len(cats))
	for _, cat := range cats {
		views = append(views, categoryView{
			ID:           cat.ID,
			NameAr:       cat.NameAr,
			NameEn:       cat.NameEn,
			ImageURL:     cat.ImageURL,
			Order:        cat.SortOrder,
			ProductCount: h.catalog.CountByCategory(cat.ID),
		})
	}
	utils.Success(c, 200, "Categories retrieved", views)
}

// GetProducts handles GET /v1/catalog/products. An optional ?category=
// query parameter pre-filters the list (deep-link support); filtering is a
// pure pass over the snapshot, never a re-fetch.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	if categoryID := c.Query("category"); categoryID != "" {
		utils.Success(c, 200, "Products retrieved", h.catalog.ProductsByCategory(categoryID))
		return
	}
	utils.Success(c, 200, "Products retrieved", h.catalog.ListProducts())
}

// Refresh handles POST /v1/admin/catalog/refresh. Re-issues both fetches and
// replaces the snapshot wholesale.
func (h *CatalogHandler) Refresh(c *gin.Context) {
	if err := h.catalog.Refresh(c.Request.Context()); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to refresh catalog")
		return
	}
	utils.Success(c, 200, "Catalog refreshed", nil)
}

// GetCountries handles GET /v1/countries, serving the fixed country
// directory for the order intake form.
func (h *CatalogHandler) GetCountries(c *gin.Context) {
	utils.Success(c, 200, "Countries retrieved", countries.All())
}
