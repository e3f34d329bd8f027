package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eshop/internal/events"
	"eshop/internal/model"
	"eshop/internal/repository/memory"
	"eshop/internal/service"
)

type paymentFixture struct {
	payments   *service.PaymentService
	orders     *service.OrderService
	orderStore *memory.OrderStore
	order      *model.Order
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	orderStore := memory.NewOrderStore()
	orderSvc := service.NewOrderService(orderStore)
	paymentSvc := service.NewPaymentService(memory.NewPaymentStore(), orderSvc, events.NopPublisher{})

	products := []model.Product{{ID: "product-1", Name: "Test Product", Quantity: 1}}
	order := model.NewOrder("order-1", products, 1700000000000, "Customer")
	_, err := orderSvc.CreateOrder(context.Background(), order)
	require.NoError(t, err)

	return &paymentFixture{
		payments:   paymentSvc,
		orders:     orderSvc,
		orderStore: orderStore,
		order:      order,
	}
}

func (f *paymentFixture) orderStatus(t *testing.T) model.OrderStatus {
	t.Helper()
	order, err := f.orderStore.FindByID(context.Background(), f.order.ID)
	require.NoError(t, err)
	require.NotNil(t, order)
	return order.Status
}

func TestAddPayment(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		data            map[string]string
		wantStatus      model.PaymentStatus
		wantOrderStatus model.OrderStatus
	}{
		{
			name:            "valid voucher",
			method:          "VOUCHER",
			data:            map[string]string{"voucherCode": "ESHOP12345678BWG"},
			wantStatus:      model.PaymentStatusSuccess,
			wantOrderStatus: model.OrderStatusSuccess,
		},
		{
			name:            "invalid voucher",
			method:          "VOUCHER",
			data:            map[string]string{"voucherCode": "INVALID"},
			wantStatus:      model.PaymentStatusRejected,
			wantOrderStatus: model.OrderStatusFailed,
		},
		{
			name:            "valid bank transfer",
			method:          "BANK_TRANSFER",
			data:            map[string]string{"bankName": "BCA", "referenceCode": "REF123456"},
			wantStatus:      model.PaymentStatusSuccess,
			wantOrderStatus: model.OrderStatusSuccess,
		},
		{
			name:            "bank transfer without reference code",
			method:          "BANK_TRANSFER",
			data:            map[string]string{"bankName": "BCA", "referenceCode": ""},
			wantStatus:      model.PaymentStatusRejected,
			wantOrderStatus: model.OrderStatusFailed,
		},
		{
			name:            "unknown method",
			method:          "CASH_ON_DELIVERY",
			data:            map[string]string{"voucherCode": "ESHOP12345678BWG"},
			wantStatus:      model.PaymentStatusRejected,
			wantOrderStatus: model.OrderStatusFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPaymentFixture(t)

			payment, err := f.payments.AddPayment(context.Background(), f.order, tt.method, tt.data)
			require.NoError(t, err)
			require.NotNil(t, payment)

			assert.NotEmpty(t, payment.ID)
			assert.Equal(t, model.PaymentMethod(tt.method), payment.Method)
			assert.Equal(t, tt.wantStatus, payment.Status)
			assert.Equal(t, tt.data, payment.PaymentData)
			assert.Equal(t, f.order.ID, payment.OrderID)
			assert.Equal(t, tt.wantOrderStatus, f.orderStatus(t))
		})
	}
}

func TestAddPaymentNilOrder(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.payments.AddPayment(context.Background(), nil, "VOUCHER", nil)

	assert.ErrorIs(t, err, service.ErrNoOrder)
	assert.Nil(t, payment)
}

func TestAddPaymentPersistsPayment(t *testing.T) {
	f := newPaymentFixture(t)

	created, err := f.payments.AddPayment(context.Background(), f.order, "VOUCHER",
		map[string]string{"voucherCode": "ESHOP12345678BWG"})
	require.NoError(t, err)

	found, err := f.payments.GetPayment(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, model.PaymentStatusSuccess, found.Status)
}

func TestSetStatus(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.payments.AddPayment(context.Background(), f.order, "BANK_TRANSFER",
		map[string]string{"bankName": "BCA", "referenceCode": "REF123456"})
	require.NoError(t, err)

	updated, err := f.payments.SetStatus(context.Background(), payment, "REJECTED")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusRejected, updated.Status)
	assert.Equal(t, model.OrderStatusFailed, f.orderStatus(t))

	updated, err = f.payments.SetStatus(context.Background(), payment, "SUCCESS")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusSuccess, updated.Status)
	assert.Equal(t, model.OrderStatusSuccess, f.orderStatus(t))
}

func TestSetStatusSuccessThenRejected(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.payments.AddPayment(context.Background(), f.order, "BANK_TRANSFER",
		map[string]string{"bankName": "BCA", "referenceCode": "REF123456"})
	require.NoError(t, err)

	_, err = f.payments.SetStatus(context.Background(), payment, "SUCCESS")
	require.NoError(t, err)

	updated, err := f.payments.SetStatus(context.Background(), payment, "REJECTED")
	require.NoError(t, err)

	assert.Equal(t, model.PaymentStatusRejected, updated.Status)
	assert.Equal(t, model.OrderStatusFailed, f.orderStatus(t))
}

func TestSetStatusWaitingFailsOrder(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.payments.AddPayment(context.Background(), f.order, "VOUCHER",
		map[string]string{"voucherCode": "ESHOP12345678BWG"})
	require.NoError(t, err)

	updated, err := f.payments.SetStatus(context.Background(), payment, "WAITING")
	require.NoError(t, err)

	assert.Equal(t, model.PaymentStatusWaiting, updated.Status)
	assert.Equal(t, model.OrderStatusFailed, f.orderStatus(t))
}

func TestSetStatusInvalid(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.payments.AddPayment(context.Background(), f.order, "VOUCHER",
		map[string]string{"voucherCode": "ESHOP12345678BWG"})
	require.NoError(t, err)

	updated, err := f.payments.SetStatus(context.Background(), payment, "BOGUS")

	assert.ErrorIs(t, err, model.ErrInvalidPaymentStatus)
	assert.Nil(t, updated)
	assert.Equal(t, model.PaymentStatusSuccess, payment.Status)
	assert.Equal(t, model.OrderStatusSuccess, f.orderStatus(t))
}

func TestGetPaymentAbsent(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.payments.GetPayment(context.Background(), "nonexistent")

	require.NoError(t, err)
	assert.Nil(t, payment)
}

func TestGetAllPayments(t *testing.T) {
	f := newPaymentFixture(t)

	first, err := f.payments.AddPayment(context.Background(), f.order, "VOUCHER",
		map[string]string{"voucherCode": "ESHOP12345678BWG"})
	require.NoError(t, err)
	second, err := f.payments.AddPayment(context.Background(), f.order, "BANK_TRANSFER",
		map[string]string{"bankName": "BCA", "referenceCode": "REF123456"})
	require.NoError(t, err)

	payments, err := f.payments.GetAllPayments(context.Background())
	require.NoError(t, err)

	require.Len(t, payments, 2)
	assert.Equal(t, first.ID, payments[0].ID)
	assert.Equal(t, second.ID, payments[1].ID)
}
