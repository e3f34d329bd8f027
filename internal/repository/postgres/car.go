package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"eshop/internal/model"
)

type CarRepo struct {
	db *sql.DB
}

func NewCarRepo(db *sql.DB) *CarRepo {
	return &CarRepo{db: db}
}

func (r *CarRepo) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cars (id, name, color, quantity) VALUES ($1, $2, $3, $4)`,
		car.ID, car.Name, car.Color, car.Quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("insert car: %w", err)
	}
	return car, nil
}

func (r *CarRepo) FindAll(ctx context.Context) ([]*model.Car, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, color, quantity FROM cars ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query cars: %w", err)
	}
	defer rows.Close()

	var cars []*model.Car
	for rows.Next() {
		var c model.Car
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Quantity); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, &c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return cars, nil
}

func (r *CarRepo) FindByID(ctx context.Context, id string) (*model.Car, error) {
	var c model.Car
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, color, quantity FROM cars WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Color, &c.Quantity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query car: %w", err)
	}
	return &c, nil
}

func (r *CarRepo) Update(ctx context.Context, car *model.Car) (*model.Car, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cars SET name = $1, color = $2, quantity = $3 WHERE id = $4`,
		car.Name, car.Color, car.Quantity, car.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update car: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return car, nil
}

func (r *CarRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	return nil
}
