package memory

import (
	"context"

	"eshop/internal/model"
)

func NewProductStore() *Store[*model.Product] {
	return NewStore(func(p *model.Product) string { return p.ID })
}

func NewCarStore() *Store[*model.Car] {
	return NewStore(func(c *model.Car) string { return c.ID })
}

func NewPaymentStore() *Store[*model.Payment] {
	return NewStore(func(p *model.Payment) string { return p.ID })
}

type OrderStore struct {
	*Store[*model.Order]
}

func NewOrderStore() *OrderStore {
	return &OrderStore{Store: NewStore(func(o *model.Order) string { return o.ID })}
}

func (s *OrderStore) FindAllByAuthor(ctx context.Context, author string) ([]*model.Order, error) {
	return s.FindWhere(ctx, func(o *model.Order) bool { return o.Author == author })
}
