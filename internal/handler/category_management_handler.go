package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/WaslIoT/wasl_api/internal/i18n"
	"github.com/WaslIoT/wasl_api/internal/service"
	"github.com/WaslIoT/wasl_api/internal/utils"
)

// CategoryManagementHandler handles category CRUD HTTP endpoints.
type CategoryManagementHandler struct {
	categoryService *service.CategoryManagementService
}

// NewCategoryManagementHandler constructs a CategoryManagementHandler.
func NewCategoryManagementHandler(categoryService *service.CategoryManagementService) *CategoryManagementHandler {
	return &CategoryManagementHandler{categoryService: categoryService}
}

// ListCategories handles GET /v1/admin/categories
func (h *CategoryManagementHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve categories")
		return
	}
	utils.Success(c, 200, "Categories retrieved", categories)
}

// CreateCategory handles POST /v1/admin/categories
func (h *CategoryManagementHandler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create category")
		return
	}
	utils.Success(c, 201, "Category created successfully", category)
}

// UpdateCategory handles PUT /v1/admin/categories/:id
func (h *CategoryManagementHandler) UpdateCategory(c *gin.Context) {
	var req service.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, utils.ErrCategoryNotFound) {
			utils.Error(c, 404, "CATEGORY_NOT_FOUND", "Category not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update category")
		return
	}
	utils.Success(c, 200, "Category updated successfully", category)
}

// DeleteCategory handles DELETE /v1/admin/categories/:id. Deleting a
// category that still owns products is rejected with a dedicated
// user-facing message and performs no mutation.
func (h *CategoryManagementHandler) DeleteCategory(c *gin.Context) {
	locale := i18n.ParseLocale(c.Query("locale"))

	if err := h.categoryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, utils.ErrCategoryNotFound):
			utils.Error(c, 404, "CATEGORY_NOT_FOUND", "Category not found")
		case errors.Is(err, utils.ErrCategoryInUse):
			utils.Error(c, 409, "CATEGORY_IN_USE", i18n.T(locale, i18n.MsgCategoryInUse))
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete category")
		}
		return
	}
	utils.Success(c, 200, "Category deleted successfully", nil)
}
