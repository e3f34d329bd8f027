package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"eshop/internal/model"
)

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id, name, quantity) VALUES ($1, $2, $3)`,
		product.ID, product.Name, product.Quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return product, nil
}

func (r *ProductRepo) FindAll(ctx context.Context) ([]*model.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, quantity FROM products ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []*model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return products, nil
}

func (r *ProductRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, quantity FROM products WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Quantity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET name = $1, quantity = $2 WHERE id = $3`,
		product.Name, product.Quantity, product.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return product, nil
}

func (r *ProductRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
