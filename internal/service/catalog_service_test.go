package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WaslIoT/wasl_api/internal/i18n"
	"github.com/WaslIoT/wasl_api/internal/models"
)

// ── In-memory catalog sources ────────────────────────────────────────────────

type fakeCategorySource struct {
	categories []models.Category
	err        error
}

func (f *fakeCategorySource) GetActive(_ context.Context) ([]models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

type fakeProductSource struct {
	products []models.Product
	err      error
}

func (f *fakeProductSource) GetActive(_ context.Context) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func testCatalog(t *testing.T) *CatalogService {
	t.Helper()
	cats := &fakeCategorySource{categories: []models.Category{
		{ID: "cat-1", NameAr: "حساسات", NameEn: "Sensors", SortOrder: 0, IsActive: true},
		{ID: "cat-2", NameAr: "بوابات", NameEn: "Gateways", SortOrder: 1, IsActive: true},
	}}
	prods := &fakeProductSource{products: []models.Product{
		{ID: "p-1", CategoryID: "cat-1", NameAr: "حساس حرارة", NameEn: "Temp Sensor", IsActive: true},
		{ID: "p-2", CategoryID: "cat-1", NameAr: "حساس رطوبة", NameEn: "Humidity Sensor", IsActive: true},
		{ID: "p-3", CategoryID: "cat-2", NameAr: "بوابة", NameEn: "Edge Gateway", IsActive: true},
	}}
	svc := NewCatalogService(cats, prods)
	require.NoError(t, svc.Refresh(context.Background()))
	return svc
}

func TestCatalogRefreshAndList(t *testing.T) {
	svc := testCatalog(t)
	assert.Len(t, svc.ListCategories(), 2)
	assert.Len(t, svc.ListProducts(), 3)
}

func TestProductsByCategoryIsPure(t *testing.T) {
	svc := testCatalog(t)

	first := svc.ProductsByCategory("cat-1")
	second := svc.ProductsByCategory("cat-1")

	require.Len(t, first, 2)
	assert.Equal(t, first, second, "filtering twice yields the same result")
	for _, p := range first {
		assert.Equal(t, "cat-1", p.CategoryID)
	}

	// Mutating the returned slice must not leak into the snapshot.
	first[0].CategoryID = "mutated"
	assert.Equal(t, "cat-1", svc.ProductsByCategory("cat-1")[0].CategoryID)

	assert.Empty(t, svc.ProductsByCategory("no-such-category"))
}

func TestCountByCategory(t *testing.T) {
	svc := testCatalog(t)
	assert.Equal(t, 2, svc.CountByCategory("cat-1"))
	assert.Equal(t, 1, svc.CountByCategory("cat-2"))
	assert.Equal(t, 0, svc.CountByCategory("cat-3"))
}

func TestCategoryName(t *testing.T) {
	svc := testCatalog(t)

	name, ok := svc.CategoryName("cat-1", i18n.LocaleEnglish)
	require.True(t, ok)
	assert.Equal(t, "Sensors", name)

	name, ok = svc.CategoryName("cat-1", i18n.LocaleArabic)
	require.True(t, ok)
	assert.Equal(t, "حساسات", name)

	_, ok = svc.CategoryName("missing", i18n.LocaleEnglish)
	assert.False(t, ok)
}

func TestRefreshFailureKeepsSnapshot(t *testing.T) {
	cats := &fakeCategorySource{categories: []models.Category{{ID: "cat-1", IsActive: true}}}
	prods := &fakeProductSource{products: []models.Product{{ID: "p-1", CategoryID: "cat-1", IsActive: true}}}
	svc := NewCatalogService(cats, prods)
	require.NoError(t, svc.Refresh(context.Background()))

	prods.err = errors.New("connection reset")
	assert.Error(t, svc.Refresh(context.Background()))

	// Previous snapshot survives the failed refresh.
	assert.Len(t, svc.ListCategories(), 1)
	assert.Len(t, svc.ListProducts(), 1)
}
