package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WaslIoT/wasl_api/internal/models"
	"github.com/WaslIoT/wasl_api/internal/utils"
)

// ── In-memory category store ─────────────────────────────────────────────────

type fakeCategoryStore struct {
	categories map[string]*models.Category
}

func newFakeCategoryStore(cats ...*models.Category) *fakeCategoryStore {
	s := &fakeCategoryStore{categories: map[string]*models.Category{}}
	for _, c := range cats {
		s.categories[c.ID] = c
	}
	return s
}

func (f *fakeCategoryStore) GetAll(_ context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryStore) GetByID(_ context.Context, id string) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryStore) Create(_ context.Context, category *models.Category) error {
	category.ID = uuid.New().String()
	cp := *category
	f.categories[category.ID] = &cp
	return nil
}

func (f *fakeCategoryStore) Update(_ context.Context, category *models.Category) error {
	if _, ok := f.categories[category.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *category
	f.categories[category.ID] = &cp
	return nil
}

func (f *fakeCategoryStore) Delete(_ context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.categories, id)
	return nil
}

type fakeProductCounter struct {
	counts map[string]int
}

func (f *fakeProductCounter) CountByCategory(_ context.Context, categoryID string) (int, error) {
	return f.counts[categoryID], nil
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	store := newFakeCategoryStore(&models.Category{ID: "cat-1", NameAr: "حساسات", NameEn: "Sensors"})
	counter := &fakeProductCounter{counts: map[string]int{"cat-1": 3}}
	svc := NewCategoryManagementService(store, counter)

	err := svc.Delete(context.Background(), "cat-1")
	assert.ErrorIs(t, err, utils.ErrCategoryInUse)

	// The guard ran before the delete: the category is still there.
	_, err = store.GetByID(context.Background(), "cat-1")
	assert.NoError(t, err)
}

func TestDeleteCategoryRemovesExactlyOne(t *testing.T) {
	store := newFakeCategoryStore(
		&models.Category{ID: "cat-1", NameAr: "حساسات", NameEn: "Sensors"},
		&models.Category{ID: "cat-2", NameAr: "بوابات", NameEn: "Gateways"},
	)
	counter := &fakeProductCounter{counts: map[string]int{}}
	svc := NewCategoryManagementService(store, counter)

	require.NoError(t, svc.Delete(context.Background(), "cat-1"))

	remaining, err := store.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "cat-2", remaining[0].ID)
}

func TestDeleteCategoryUnknown(t *testing.T) {
	svc := NewCategoryManagementService(newFakeCategoryStore(), &fakeProductCounter{counts: map[string]int{}})
	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

func TestCreateCategoryDefaultsOrderToCount(t *testing.T) {
	store := newFakeCategoryStore(
		&models.Category{ID: "cat-1"},
		&models.Category{ID: "cat-2"},
	)
	svc := NewCategoryManagementService(store, &fakeProductCounter{counts: map[string]int{}})

	created, err := svc.Create(context.Background(), &CreateCategoryRequest{
		NameAr: "إكسسوارات", NameEn: "Accessories", IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, created.SortOrder, "absent order defaults to the current count")
	assert.NotEmpty(t, created.ID)
}

func TestCreateCategoryExplicitOrder(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryManagementService(store, &fakeProductCounter{counts: map[string]int{}})

	five := 5
	created, err := svc.Create(context.Background(), &CreateCategoryRequest{
		NameAr: "إكسسوارات", NameEn: "Accessories", Order: &five,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.SortOrder)

	negative := -2
	created, err = svc.Create(context.Background(), &CreateCategoryRequest{
		NameAr: "أخرى", NameEn: "Other", Order: &negative,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.SortOrder, "negative order clamps to zero")
}

func TestUpdateCategory(t *testing.T) {
	store := newFakeCategoryStore(&models.Category{ID: "cat-1", NameAr: "قديم", NameEn: "Old"})
	svc := NewCategoryManagementService(store, &fakeProductCounter{counts: map[string]int{}})

	updated, err := svc.Update(context.Background(), "cat-1", &UpdateCategoryRequest{
		NameAr: "جديد", NameEn: "New", IsActive: true, Order: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.NameEn)
	assert.Equal(t, 3, updated.SortOrder)

	_, err = svc.Update(context.Background(), "missing", &UpdateCategoryRequest{NameAr: "x", NameEn: "x"})
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}
