package repository

import (
	"context"

	"eshop/internal/model"
)

// CrudRepository is the capability set shared by the catalog stores. Lookups
// for ids that do not exist return the zero value without an error.
type CrudRepository[T any] interface {
	Create(ctx context.Context, entity T) (T, error)
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, entity T) (T, error)
	DeleteByID(ctx context.Context, id string) error
}

type ProductRepository = CrudRepository[*model.Product]

type CarRepository = CrudRepository[*model.Car]

type OrderRepository interface {
	CrudRepository[*model.Order]
	FindAllByAuthor(ctx context.Context, author string) ([]*model.Order, error)
}

type PaymentRepository interface {
	Save(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	FindByID(ctx context.Context, id string) (*model.Payment, error)
	FindAll(ctx context.Context) ([]*model.Payment, error)
}
