package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/WaslIoT/wasl_api/internal/models"
	"github.com/WaslIoT/wasl_api/internal/service"
	"github.com/WaslIoT/wasl_api/internal/utils"
)

// OrderManagementHandler handles the admin order screens.
type OrderManagementHandler struct {
	orderService *service.OrderManagementService
}

// NewOrderManagementHandler constructs an OrderManagementHandler.
func NewOrderManagementHandler(orderService *service.OrderManagementService) *OrderManagementHandler {
	return &OrderManagementHandler{orderService: orderService}
}

// ListOrders handles GET /v1/admin/orders
func (h *OrderManagementHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve orders")
		return
	}
	utils.Success(c, 200, "Orders retrieved", orders)
}

// UpdateOrderStatus handles PUT /v1/admin/orders/:id/status. The status set
// is a flat select; any known value may replace any other.
func (h *OrderManagementHandler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidStatus):
			utils.Error(c, 400, "INVALID_STATUS", "Unknown order status")
		case errors.Is(err, utils.ErrOrderNotFound):
			utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update order")
		}
		return
	}
	utils.Success(c, 200, "Order status updated", order)
}

// DeleteOrder handles DELETE /v1/admin/orders/:id
func (h *OrderManagementHandler) DeleteOrder(c *gin.Context) {
	if err := h.orderService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, utils.ErrOrderNotFound) {
			utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete order")
		return
	}
	utils.Success(c, 200, "Order deleted successfully", nil)
}

// GetStats handles GET /v1/admin/orders/stats (per-status counts for the
// console badges).
func (h *OrderManagementHandler) GetStats(c *gin.Context) {
	counts, err := h.orderService.Stats(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve order stats")
		return
	}
	utils.Success(c, 200, "Order stats retrieved", counts)
}
