package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"eshop/internal/model"
)

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	products, err := json.Marshal(order.Products)
	if err != nil {
		return nil, fmt.Errorf("marshal products: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO orders (id, products, order_time, author, status) VALUES ($1, $2, $3, $4, $5)`,
		order.ID, products, order.OrderTime, order.Author, string(order.Status),
	)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return order, nil
}

func (r *OrderRepo) FindAll(ctx context.Context) ([]*model.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, products, order_time, author, status FROM orders ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *OrderRepo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var (
		o        model.Order
		products []byte
		status   string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, products, order_time, author, status FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &products, &o.OrderTime, &o.Author, &status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}
	if err := json.Unmarshal(products, &o.Products); err != nil {
		return nil, fmt.Errorf("unmarshal products: %w", err)
	}
	o.Status = model.OrderStatus(status)
	return &o, nil
}

func (r *OrderRepo) Update(ctx context.Context, order *model.Order) (*model.Order, error) {
	products, err := json.Marshal(order.Products)
	if err != nil {
		return nil, fmt.Errorf("marshal products: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET products = $1, order_time = $2, author = $3, status = $4 WHERE id = $5`,
		products, order.OrderTime, order.Author, string(order.Status), order.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return order, nil
}

// DeleteByID is a deliberate no-op: orders are never removed, only moved
// through their status lifecycle.
func (r *OrderRepo) DeleteByID(ctx context.Context, id string) error {
	return nil
}

func (r *OrderRepo) FindAllByAuthor(ctx context.Context, author string) ([]*model.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, products, order_time, author, status FROM orders WHERE author = $1 ORDER BY created_at ASC`,
		author,
	)
	if err != nil {
		return nil, fmt.Errorf("query orders by author: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows *sql.Rows) ([]*model.Order, error) {
	var orders []*model.Order
	for rows.Next() {
		var (
			o        model.Order
			products []byte
			status   string
		)
		if err := rows.Scan(&o.ID, &products, &o.OrderTime, &o.Author, &status); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal(products, &o.Products); err != nil {
			return nil, fmt.Errorf("unmarshal products: %w", err)
		}
		o.Status = model.OrderStatus(status)
		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return orders, nil
}
