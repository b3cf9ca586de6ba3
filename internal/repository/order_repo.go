package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/WaslIoT/wasl_api/internal/models"
)

// OrderRepository handles data access for orders.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// GetAll returns every order, newest first.
func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	const q = `SELECT * FROM orders ORDER BY created_at DESC`
	var orders []models.Order
	if err := r.db.SelectContext(ctx, &orders, q); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID returns a single order by id.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	const q = `SELECT * FROM orders WHERE id = $1 LIMIT 1`
	var o models.Order
	if err := r.db.GetContext(ctx, &o, q, id); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts a new order with a generated id.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	order.ID = uuid.New().String()
	const q = `
		INSERT INTO orders (id, product_id, product_name, customer_name, address, phone, whatsapp, country, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`
	return r.db.QueryRowxContext(ctx, q,
		order.ID,
		order.ProductID,
		order.ProductName,
		order.CustomerName,
		order.Address,
		order.Phone,
		order.Whatsapp,
		order.Country,
		order.Status,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
}

// UpdateStatus sets the fulfillment status of an order.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	const q = `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, status)
	return err
}

// Delete removes an order by id.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM orders WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// StatusCount is one row of the per-status order tally.
type StatusCount struct {
	Status models.OrderStatus `db:"status" json:"status"`
	Count  int                `db:"count" json:"count"`
}

// CountByStatus returns order counts grouped by status (admin badge data).
func (r *OrderRepository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	const q = `SELECT status, COUNT(1) AS count FROM orders GROUP BY status`
	var counts []StatusCount
	if err := r.db.SelectContext(ctx, &counts, q); err != nil {
		return nil, err
	}
	return counts, nil
}
