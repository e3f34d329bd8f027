package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"eshop/internal/events"
	"eshop/internal/model"
	"eshop/internal/repository"
)

var ErrNoOrder = errors.New("payment requires an order")

// orderStatusUpdater is what the payment workflow needs from the order side.
type orderStatusUpdater interface {
	UpdateStatus(ctx context.Context, id, status string) (*model.Order, error)
}

type PaymentService struct {
	payments repository.PaymentRepository
	orders   orderStatusUpdater
	events   events.Publisher
}

func NewPaymentService(payments repository.PaymentRepository, orders orderStatusUpdater, publisher events.Publisher) *PaymentService {
	return &PaymentService{
		payments: payments,
		orders:   orders,
		events:   publisher,
	}
}

// AddPayment validates the submitted payment data, records the attempt and
// moves the order to the matching status. Invalid data is a normal outcome
// (REJECTED payment, FAILED order), not an error. Both writes happen here so
// no caller can observe a payment whose order was never told.
func (s *PaymentService) AddPayment(ctx context.Context, order *model.Order, method string, data map[string]string) (*model.Payment, error) {
	if order == nil {
		return nil, ErrNoOrder
	}

	valid := false
	switch model.PaymentMethod(method) {
	case model.PaymentMethodVoucher:
		valid = IsValidVoucherCode(data["voucherCode"])
	case model.PaymentMethodBankTransfer:
		valid = IsValidBankTransferData(data)
	}

	paymentStatus := model.PaymentStatusRejected
	orderStatus := model.OrderStatusFailed
	if valid {
		paymentStatus = model.PaymentStatusSuccess
		orderStatus = model.OrderStatusSuccess
	}

	payment := &model.Payment{
		ID:          uuid.NewString(),
		Method:      model.PaymentMethod(method),
		Status:      paymentStatus,
		PaymentData: data,
		OrderID:     order.ID,
	}

	saved, err := s.payments.Save(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("save payment: %w", err)
	}

	if _, err := s.orders.UpdateStatus(ctx, order.ID, string(orderStatus)); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.publishStatus(ctx, saved, orderStatus)
	return saved, nil
}

// SetStatus is the admin override: it forces a payment status and pushes the
// order to SUCCESS or FAILED accordingly.
func (s *PaymentService) SetStatus(ctx context.Context, payment *model.Payment, status string) (*model.Payment, error) {
	parsed, err := model.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}

	payment.Status = parsed
	saved, err := s.payments.Save(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("save payment: %w", err)
	}

	orderStatus := model.OrderStatusFailed
	if parsed == model.PaymentStatusSuccess {
		orderStatus = model.OrderStatusSuccess
	}
	if _, err := s.orders.UpdateStatus(ctx, payment.OrderID, string(orderStatus)); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.publishStatus(ctx, saved, orderStatus)
	return saved, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id string) (*model.Payment, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find payment: %w", err)
	}
	return payment, nil
}

func (s *PaymentService) GetAllPayments(ctx context.Context) ([]*model.Payment, error) {
	payments, err := s.payments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	return payments, nil
}

// publishStatus never fails the payment call; a lost event is logged.
func (s *PaymentService) publishStatus(ctx context.Context, payment *model.Payment, orderStatus model.OrderStatus) {
	event := events.PaymentStatusEvent{
		PaymentID:     payment.ID,
		OrderID:       payment.OrderID,
		PaymentStatus: string(payment.Status),
		OrderStatus:   string(orderStatus),
		OccurredAt:    time.Now(),
	}
	if err := s.events.PublishPaymentStatus(ctx, event); err != nil {
		slog.Error("failed to publish payment status event", "payment_id", payment.ID, "error", err)
	}
}
