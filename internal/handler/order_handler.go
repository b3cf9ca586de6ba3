package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/WaslIoT/wasl_api/internal/service"
	"github.com/WaslIoT/wasl_api/internal/utils"
)

// OrderHandler serves the storefront order intake endpoint.
type OrderHandler struct {
	intake *service.OrderIntakeService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(intake *service.OrderIntakeService) *OrderHandler {
	return &OrderHandler{intake: intake}
}

// CreateOrder handles POST /v1/orders. Validation failures come back as a
// 422 with the full field→message map; persistence failures surface as a
// distinct 500 rather than being swallowed.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	order, fieldErrs, err := h.intake.Submit(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrProductNotFound):
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		case errors.Is(err, utils.ErrProductInactive):
			utils.Error(c, 409, "PRODUCT_INACTIVE", "Product is not available for ordering")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to submit order")
		}
		return
	}
	if len(fieldErrs) > 0 {
		utils.ValidationError(c, fieldErrs)
		return
	}

	utils.Success(c, 201, "Order submitted successfully", order)
}
