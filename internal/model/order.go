package model

import (
	"errors"
)

type OrderStatus string

const (
	OrderStatusWaitingPayment OrderStatus = "WAITING_PAYMENT"
	OrderStatusSuccess        OrderStatus = "SUCCESS"
	OrderStatusFailed         OrderStatus = "FAILED"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusWaitingPayment, OrderStatusSuccess, OrderStatusFailed:
		return OrderStatus(s), nil
	}
	return "", ErrInvalidOrderStatus
}

type Order struct {
	ID        string      `json:"id"`
	Products  []Product   `json:"products"`
	OrderTime int64       `json:"order_time"`
	Author    string      `json:"author"`
	Status    OrderStatus `json:"status"`
}

// NewOrder builds an order in WAITING_PAYMENT. The create form allows an
// empty cart, so an order without products gets a single placeholder item
// to keep it representable.
func NewOrder(id string, products []Product, orderTime int64, author string) *Order {
	o := &Order{
		ID:        id,
		Products:  products,
		OrderTime: orderTime,
		Author:    author,
		Status:    OrderStatusWaitingPayment,
	}
	if len(o.Products) == 0 {
		o.Products = []Product{{
			ID:       "default-" + id,
			Name:     "Default Product",
			Quantity: 1,
		}}
	}
	return o
}

// SetStatus is the single place order status changes go through. Unknown
// values leave the order untouched.
func (o *Order) SetStatus(status string) error {
	parsed, err := ParseOrderStatus(status)
	if err != nil {
		return err
	}
	o.Status = parsed
	return nil
}
