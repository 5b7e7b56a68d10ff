package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/j0aoarthur/sistema-delivery/internal/entity"
	"github.com/j0aoarthur/sistema-delivery/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates an OrderRepository backed by Postgres. Selected
// when DATABASE_URL is configured, so order history survives restarts.
func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Save(ctx context.Context, order entity.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// ON CONFLICT keeps a retried checkout idempotent instead of crashing
	// with a duplicate key error.
	var inserted bool
	err = tx.QueryRowContext(ctx,
		"INSERT INTO orders (id, total_price, status, created_at) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING RETURNING true",
		order.ID, order.TotalPrice, string(order.Status), order.CreatedAt,
	).Scan(&inserted)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, product_id, name, price, quantity) VALUES ($1, $2, $3, $4, $5)",
			order.ID, item.ProductID, item.Name, item.Price, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *orderRepository) FindRecent(ctx context.Context, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, total_price, status, created_at FROM orders ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		var o entity.Order
		var status string
		if err := rows.Scan(&o.ID, &o.TotalPrice, &status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		o.Status = entity.OrderStatus(status)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	for i := range orders {
		items, err := r.findItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (entity.Order, error) {
	var o entity.Order
	var status string
	err := r.db.QueryRowContext(ctx,
		"SELECT id, total_price, status, created_at FROM orders WHERE id = $1", id,
	).Scan(&o.ID, &o.TotalPrice, &status, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return entity.Order{}, repository.ErrOrderNotFound
	}
	if err != nil {
		return entity.Order{}, fmt.Errorf("failed to query order %s: %w", id, err)
	}
	o.Status = entity.OrderStatus(status)

	items, err := r.findItems(ctx, o.ID)
	if err != nil {
		return entity.Order{}, err
	}
	o.Items = items
	return o, nil
}

func (r *orderRepository) findItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT product_id, name, price, quantity FROM order_items WHERE order_id = $1", orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
