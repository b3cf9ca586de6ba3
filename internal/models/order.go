package models

import "time"

// OrderStatus enumerates fulfillment states. Transitions are a flat select:
// any status may be set from any other.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a customer-submitted purchase request. ProductName is a
// point-in-time snapshot taken in the locale active at submission, not a
// live reference to the product record.
type Order struct {
	ID           string      `db:"id" json:"id"`
	ProductID    string      `db:"product_id" json:"productId"`
	ProductName  string      `db:"product_name" json:"productName"`
	CustomerName string      `db:"customer_name" json:"customerName"`
	Address      string      `db:"address" json:"address"`
	Phone        string      `db:"phone" json:"phone"`
	Whatsapp     string      `db:"whatsapp" json:"whatsapp"`
	Country      string      `db:"country" json:"country"`
	Status       OrderStatus `db:"status" json:"status"`
	CreatedAt    time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updatedAt"`
}
