package repository

import (
	"context"
	"errors"

	"github.com/j0aoarthur/sistema-delivery/internal/entity"
)

// ErrOrderNotFound is returned when an order ID does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository handles persistence for Orders.
type OrderRepository interface {
	Save(ctx context.Context, order entity.Order) error
	FindRecent(ctx context.Context, limit int) ([]entity.Order, error)
	FindByID(ctx context.Context, id string) (entity.Order, error)
}
