package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WaslIoT/wasl_api/internal/models"
	"github.com/WaslIoT/wasl_api/internal/utils"
	"github.com/WaslIoT/wasl_api/internal/validation"
)

// ── In-memory product/order repositories ─────────────────────────────────────

type fakeProductGetter struct {
	products map[string]*models.Product
}

func (f *fakeProductGetter) GetByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *p
	return &cp, nil
}

type fakeOrderWriter struct {
	orders []*models.Order
	err    error
}

func (f *fakeOrderWriter) Create(_ context.Context, order *models.Order) error {
	if f.err != nil {
		return f.err
	}
	order.ID = uuid.New().String()
	f.orders = append(f.orders, order)
	return nil
}

func intakeFixture() (*OrderIntakeService, *fakeOrderWriter) {
	products := &fakeProductGetter{products: map[string]*models.Product{
		"p-1": {ID: "p-1", CategoryID: "cat-1", NameAr: "حساس حرارة", NameEn: "Temp Sensor", IsActive: true},
		"p-2": {ID: "p-2", CategoryID: "cat-1", NameAr: "قديم", NameEn: "Legacy", IsActive: false},
	}}
	orders := &fakeOrderWriter{}
	return NewOrderIntakeService(products, orders), orders
}

func validRequest() *SubmitOrderRequest {
	return &SubmitOrderRequest{
		ProductID:    "p-1",
		CustomerName: "Ali Ben Omar",
		Address:      "Riyadh, King Fahd Rd, Bldg 4",
		Phone:        "501234567",
		Whatsapp:     "501234568",
		Country:      "SA",
		Locale:       "ar",
	}
}

func TestSubmitOrderRoundTrip(t *testing.T) {
	svc, orders := intakeFixture()

	order, fieldErrs, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, order)

	require.Len(t, orders.orders, 1, "exactly one record persisted")
	stored := orders.orders[0]
	assert.Equal(t, models.OrderStatusPending, stored.Status)
	assert.Equal(t, "+966501234567", stored.Phone)
	assert.Equal(t, "+966501234568", stored.Whatsapp)
	assert.Equal(t, "حساس حرارة", stored.ProductName, "snapshot in the active locale")
	assert.Equal(t, "SA", stored.Country)
	assert.Equal(t, "p-1", stored.ProductID)
	assert.NotEmpty(t, stored.ID)
}

func TestSubmitOrderEnglishLocaleSnapshot(t *testing.T) {
	svc, orders := intakeFixture()

	req := validRequest()
	req.Locale = "en"
	_, fieldErrs, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	assert.Equal(t, "Temp Sensor", orders.orders[0].ProductName)
}

func TestSubmitOrderWhatsappMirroring(t *testing.T) {
	svc, orders := intakeFixture()

	req := validRequest()
	req.SameAsPhone = true
	req.Whatsapp = "ignored garbage"
	_, fieldErrs, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	stored := orders.orders[0]
	assert.Equal(t, stored.Phone, stored.Whatsapp, "whatsapp mirrors phone at submission time")
}

func TestSubmitOrderValidationFailureWritesNothing(t *testing.T) {
	svc, orders := intakeFixture()

	req := validRequest()
	req.CustomerName = "Ali"
	req.Address = "short"
	req.Country = ""
	_, fieldErrs, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, fieldErrs, validation.FieldName)
	assert.Contains(t, fieldErrs, validation.FieldAddress)
	assert.Contains(t, fieldErrs, validation.FieldCountry)
	assert.Empty(t, orders.orders, "no mutation on validation failure")
}

func TestSubmitOrderUnknownProduct(t *testing.T) {
	svc, _ := intakeFixture()

	req := validRequest()
	req.ProductID = "missing"
	_, _, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestSubmitOrderInactiveProduct(t *testing.T) {
	svc, _ := intakeFixture()

	req := validRequest()
	req.ProductID = "p-2"
	_, _, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrProductInactive)
}

func TestSubmitOrderPersistFailureSurfaces(t *testing.T) {
	svc, orders := intakeFixture()
	orders.err = errors.New("write timeout")

	_, fieldErrs, err := svc.Submit(context.Background(), validRequest())
	assert.Error(t, err, "write failures are surfaced, not swallowed")
	assert.Empty(t, fieldErrs)
}
