package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"eshop/internal/model"
	"eshop/internal/repository"
)

type CarService struct {
	cars repository.CarRepository
}

func NewCarService(cars repository.CarRepository) *CarService {
	return &CarService{cars: cars}
}

func (s *CarService) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	if car.ID == "" {
		car.ID = uuid.NewString()
	}
	if err := validateCar(car); err != nil {
		return nil, err
	}
	created, err := s.cars.Create(ctx, car)
	if err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}
	return created, nil
}

func (s *CarService) FindAll(ctx context.Context) ([]*model.Car, error) {
	cars, err := s.cars.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cars: %w", err)
	}
	return cars, nil
}

func (s *CarService) FindByID(ctx context.Context, id string) (*model.Car, error) {
	car, err := s.cars.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find car: %w", err)
	}
	return car, nil
}

func (s *CarService) Update(ctx context.Context, car *model.Car) (*model.Car, error) {
	if err := validateCar(car); err != nil {
		return nil, err
	}
	updated, err := s.cars.Update(ctx, car)
	if err != nil {
		return nil, fmt.Errorf("update car: %w", err)
	}
	return updated, nil
}

func (s *CarService) DeleteByID(ctx context.Context, id string) error {
	if err := s.cars.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	return nil
}

func validateCar(car *model.Car) error {
	if strings.TrimSpace(car.Name) == "" {
		return fmt.Errorf("%w: car name cannot be empty", ErrValidation)
	}
	if car.Quantity < 0 {
		return fmt.Errorf("%w: car quantity cannot be negative", ErrValidation)
	}
	return nil
}
