package service

import (
	"context"
	"errors"
	"fmt"

	"eshop/internal/model"
	"eshop/internal/repository"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return created, nil
}

func (s *OrderService) FindByID(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}

// UpdateStatus loads the order and routes the change through the model's
// status check, so an unknown status never reaches the store.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if err := order.SetStatus(status); err != nil {
		return nil, err
	}

	updated, err := s.orders.Update(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return updated, nil
}

func (s *OrderService) FindAllByAuthor(ctx context.Context, author string) ([]*model.Order, error) {
	orders, err := s.orders.FindAllByAuthor(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("query orders by author: %w", err)
	}
	return orders, nil
}
