package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"eshop/internal/model"
	"eshop/internal/repository"
)

type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

func (s *ProductService) FindAll(ctx context.Context) ([]*model.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	return products, nil
}

func (s *ProductService) FindByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	updated, err := s.products.Update(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

func (s *ProductService) DeleteByID(ctx context.Context, id string) error {
	if err := s.products.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func validateProduct(product *model.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("%w: product name cannot be empty", ErrValidation)
	}
	if product.Quantity < 0 {
		return fmt.Errorf("%w: product quantity cannot be negative", ErrValidation)
	}
	return nil
}
