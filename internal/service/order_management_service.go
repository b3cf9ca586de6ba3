package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/WaslIoT/wasl_api/internal/models"
	"github.com/WaslIoT/wasl_api/internal/repository"
	"github.com/WaslIoT/wasl_api/internal/utils"
)

// OrderStore is the repository surface the admin console needs for orders.
type OrderStore interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) ([]repository.StatusCount, error)
}

// OrderManagementService implements the admin console's order screens:
// list, status update, delete, and the per-status counts.
type OrderManagementService struct {
	orderRepo OrderStore
}

// NewOrderManagementService constructs an OrderManagementService.
func NewOrderManagementService(orderRepo OrderStore) *OrderManagementService {
	return &OrderManagementService{orderRepo: orderRepo}
}

// List returns every order, newest first.
func (s *OrderManagementService) List(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.GetAll(ctx)
}

// UpdateStatus sets an order's fulfillment status. The status set is a flat
// select: any known status may be set from any other, there is no
// transition graph.
func (s *OrderManagementService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, utils.ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrOrderNotFound
		}
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		log.Error().Err(err).Str("order_id", id).Msg("order status update failed")
		return nil, err
	}
	order.Status = status
	return order, nil
}

// Delete removes an order unconditionally.
func (s *OrderManagementService) Delete(ctx context.Context, id string) error {
	if _, err := s.orderRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrOrderNotFound
		}
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}

// Stats returns order counts grouped by status for the admin badges.
func (s *OrderManagementService) Stats(ctx context.Context) ([]repository.StatusCount, error) {
	return s.orderRepo.CountByStatus(ctx)
}
