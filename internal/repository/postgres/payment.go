package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"eshop/internal/model"
)

type PaymentRepo struct {
	db *sql.DB
}

func NewPaymentRepo(db *sql.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) Save(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	data, err := json.Marshal(payment.PaymentData)
	if err != nil {
		return nil, fmt.Errorf("marshal payment data: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO payments (id, method, status, payment_data, order_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET method = EXCLUDED.method, status = EXCLUDED.status, payment_data = EXCLUDED.payment_data
	`, payment.ID, string(payment.Method), string(payment.Status), data, payment.OrderID)
	if err != nil {
		return nil, fmt.Errorf("save payment: %w", err)
	}
	return payment, nil
}

func (r *PaymentRepo) FindByID(ctx context.Context, id string) (*model.Payment, error) {
	var (
		p      model.Payment
		method string
		status string
		data   []byte
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, method, status, payment_data, order_id FROM payments WHERE id = $1`, id,
	).Scan(&p.ID, &method, &status, &data, &p.OrderID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query payment: %w", err)
	}
	if err := json.Unmarshal(data, &p.PaymentData); err != nil {
		return nil, fmt.Errorf("unmarshal payment data: %w", err)
	}
	p.Method = model.PaymentMethod(method)
	p.Status = model.PaymentStatus(status)
	return &p, nil
}

func (r *PaymentRepo) FindAll(ctx context.Context) ([]*model.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, method, status, payment_data, order_id FROM payments ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []*model.Payment
	for rows.Next() {
		var (
			p      model.Payment
			method string
			status string
			data   []byte
		)
		if err := rows.Scan(&p.ID, &method, &status, &data, &p.OrderID); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		if err := json.Unmarshal(data, &p.PaymentData); err != nil {
			return nil, fmt.Errorf("unmarshal payment data: %w", err)
		}
		p.Method = model.PaymentMethod(method)
		p.Status = model.PaymentStatus(status)
		payments = append(payments, &p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return payments, nil
}
