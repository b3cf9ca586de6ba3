package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WaslIoT/wasl_api/internal/models"
	"github.com/WaslIoT/wasl_api/internal/repository"
	"github.com/WaslIoT/wasl_api/internal/utils"
)

// ── In-memory order store ────────────────────────────────────────────────────

type fakeOrderStore struct {
	orders map[string]*models.Order
}

func newFakeOrderStore(orders ...*models.Order) *fakeOrderStore {
	s := &fakeOrderStore{orders: map[string]*models.Order{}}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

func (f *fakeOrderStore) GetAll(_ context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderStore) GetByID(_ context.Context, id string) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, id string, status models.OrderStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return sql.ErrNoRows
	}
	o.Status = status
	return nil
}

func (f *fakeOrderStore) Delete(_ context.Context, id string) error {
	if _, ok := f.orders[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderStore) CountByStatus(_ context.Context) ([]repository.StatusCount, error) {
	counts := map[models.OrderStatus]int{}
	for _, o := range f.orders {
		counts[o.Status]++
	}
	out := make([]repository.StatusCount, 0, len(counts))
	for status, n := range counts {
		out = append(out, repository.StatusCount{Status: status, Count: n})
	}
	return out, nil
}

func TestUpdateStatusFlatSelect(t *testing.T) {
	statuses := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusProcessing,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled,
	}

	// Every known status is reachable from every other; there is no
	// transition graph to honor.
	for _, from := range statuses {
		for _, to := range statuses {
			store := newFakeOrderStore(&models.Order{ID: "o-1", Status: from})
			svc := NewOrderManagementService(store)

			updated, err := svc.UpdateStatus(context.Background(), "o-1", to)
			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, updated.Status)

			stored, err := store.GetByID(context.Background(), "o-1")
			require.NoError(t, err)
			assert.Equal(t, to, stored.Status)
		}
	}
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	store := newFakeOrderStore(&models.Order{ID: "o-1", Status: models.OrderStatusPending})
	svc := NewOrderManagementService(store)

	_, err := svc.UpdateStatus(context.Background(), "o-1", "shipped")
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)

	stored, getErr := store.GetByID(context.Background(), "o-1")
	require.NoError(t, getErr)
	assert.Equal(t, models.OrderStatusPending, stored.Status, "rejected update performs no mutation")
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc := NewOrderManagementService(newFakeOrderStore())
	_, err := svc.UpdateStatus(context.Background(), "missing", models.OrderStatusCompleted)
	assert.ErrorIs(t, err, utils.ErrOrderNotFound)
}

func TestDeleteOrder(t *testing.T) {
	store := newFakeOrderStore(&models.Order{ID: "o-1", Status: models.OrderStatusPending})
	svc := NewOrderManagementService(store)

	require.NoError(t, svc.Delete(context.Background(), "o-1"))
	assert.Empty(t, store.orders)

	err := svc.Delete(context.Background(), "o-1")
	assert.ErrorIs(t, err, utils.ErrOrderNotFound)
}

func TestStats(t *testing.T) {
	store := newFakeOrderStore(
		&models.Order{ID: "o-1", Status: models.OrderStatusPending},
		&models.Order{ID: "o-2", Status: models.OrderStatusPending},
		&models.Order{ID: "o-3", Status: models.OrderStatusCompleted},
	)
	svc := NewOrderManagementService(store)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	byStatus := map[models.OrderStatus]int{}
	for _, s := range stats {
		byStatus[s.Status] = s.Count
	}
	assert.Equal(t, 2, byStatus[models.OrderStatusPending])
	assert.Equal(t, 1, byStatus[models.OrderStatusCompleted])
}
