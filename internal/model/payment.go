package model

import (
	"errors"
)

type PaymentMethod string

const (
	PaymentMethodVoucher      PaymentMethod = "VOUCHER"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

type PaymentStatus string

const (
	PaymentStatusWaiting  PaymentStatus = "WAITING"
	PaymentStatusSuccess  PaymentStatus = "SUCCESS"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

var ErrInvalidPaymentStatus = errors.New("invalid payment status")

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentStatusWaiting, PaymentStatusSuccess, PaymentStatusRejected:
		return PaymentStatus(s), nil
	}
	return "", ErrInvalidPaymentStatus
}

// Payment records a single settlement attempt against an order. The order
// itself is owned by the order side; only its id is kept here. Method is
// recorded as submitted, even when it is not one of the known methods.
type Payment struct {
	ID          string            `json:"id"`
	Method      PaymentMethod     `json:"method"`
	Status      PaymentStatus     `json:"status"`
	PaymentData map[string]string `json:"payment_data"`
	OrderID     string            `json:"order_id"`
}
