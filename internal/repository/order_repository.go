package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/shop-service/internal/domain"
)

// OrderRepository defines persistence access for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (user_id, items, total, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	return r.pool.QueryRow(ctx, query,
		order.UserID,
		items,
		order.Total,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const query = `
        SELECT id, user_id, items, total, status, created_at, updated_at
        FROM orders WHERE user_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var (
			order domain.Order
			items []byte
		)
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&items,
			&order.Total,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
