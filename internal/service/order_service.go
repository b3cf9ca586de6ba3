package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/WaslIoT/wasl_api/internal/i18n"
	"github.com/WaslIoT/wasl_api/internal/models"
	"github.com/WaslIoT/wasl_api/internal/utils"
	"github.com/WaslIoT/wasl_api/internal/validation"
	"github.com/WaslIoT/wasl_api/pkg/countries"
)

// ProductGetter resolves a product by id.
type ProductGetter interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// OrderWriter persists new orders.
type OrderWriter interface {
	Create(ctx context.Context, order *models.Order) error
}

// OrderIntakeService orchestrates the storefront order flow: country
// resolution, form validation, and persistence of the new order record.
type OrderIntakeService struct {
	productRepo ProductGetter
	orderRepo   OrderWriter
}

// NewOrderIntakeService constructs an OrderIntakeService.
func NewOrderIntakeService(productRepo ProductGetter, orderRepo OrderWriter) *OrderIntakeService {
	return &OrderIntakeService{productRepo: productRepo, orderRepo: orderRepo}
}

// SubmitOrderRequest carries the raw intake form fields.
type SubmitOrderRequest struct {
	ProductID    string `json:"productId" binding:"required"`
	CustomerName string `json:"customerName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Whatsapp     string `json:"whatsapp"`
	SameAsPhone  bool   `json:"sameAsPhone"`
	Country      string `json:"country"`
	Locale       string `json:"locale"`
}

// Submit validates the form and, when every rule passes, persists a new
// pending order. A non-empty field error map means validation failed and
// nothing was written; a non-nil error means the product lookup or the
// write itself failed (surfaced, never swallowed).
func (s *OrderIntakeService) Submit(ctx context.Context, req *SubmitOrderRequest) (*models.Order, map[string]string, error) {
	locale := i18n.ParseLocale(req.Locale)

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, utils.ErrProductNotFound
		}
		log.Error().Err(err).Str("product_id", req.ProductID).Msg("order submit: product lookup failed")
		return nil, nil, err
	}
	if !product.IsActive {
		return nil, nil, utils.ErrProductInactive
	}

	var country *countries.Country
	if c, ok := countries.ByCode(req.Country); ok {
		country = &c
	}

	fieldErrs := validation.ValidateOrderForm(validation.OrderForm{
		Country:      country,
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Phone:        req.Phone,
		Whatsapp:     req.Whatsapp,
		SameAsPhone:  req.SameAsPhone,
	}, locale)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	whatsapp := req.Whatsapp
	if req.SameAsPhone {
		whatsapp = req.Phone
	}

	order := &models.Order{
		ProductID:    product.ID,
		ProductName:  product.Name(locale.IsArabic()),
		CustomerName: strings.TrimSpace(req.CustomerName),
		Address:      strings.TrimSpace(req.Address),
		Phone:        country.DialCode + validation.Digits(req.Phone),
		Whatsapp:     country.DialCode + validation.Digits(whatsapp),
		Country:      country.Code,
		Status:       models.OrderStatusPending,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		log.Error().Err(err).Str("product_id", product.ID).Msg("order submit: persist failed")
		return nil, nil, err
	}

	log.Info().Str("order_id", order.ID).Str("product_id", product.ID).Msg("order submitted")
	return order, nil, nil
}
