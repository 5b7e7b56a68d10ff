// Package memory provides the in-memory order repository used by the demo.
// It starts seeded with a fixed order history and resets on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/j0aoarthur/sistema-delivery/internal/entity"
	"github.com/j0aoarthur/sistema-delivery/internal/repository"
)

type orderRepository struct {
	mu     sync.RWMutex
	orders []entity.Order
}

// NewOrderRepository creates an order repository seeded with the demo
// history.
func NewOrderRepository() repository.OrderRepository {
	return &orderRepository{orders: seedOrders()}
}

func (r *orderRepository) Save(ctx context.Context, order entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order)
	return nil
}

func (r *orderRepository) FindRecent(ctx context.Context, limit int) ([]entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Order, len(r.orders))
	copy(out, r.orders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return entity.Order{}, repository.ErrOrderNotFound
}

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func seedOrders() []entity.Order {
	return []entity.Order{
		{
			ID:     "PED-001",
			Status: entity.OrderDelivered,
			Items: []entity.OrderItem{
				{ProductID: "5", Name: "Hambúrguer Clássico", Price: 18.00, Quantity: 1},
				{ProductID: "7", Name: "Batata Frita", Price: 8.00, Quantity: 1},
				{ProductID: "1", Name: "Coca-Cola 350ml", Price: 4.50, Quantity: 2},
			},
			TotalPrice: 35.00,
			CreatedAt:  day("2024-01-15"),
		},
		{
			ID:     "PED-002",
			Status: entity.OrderDelivered,
			Items: []entity.OrderItem{
				{ProductID: "12", Name: "Prato Feito Completo", Price: 22.00, Quantity: 1},
				{ProductID: "2", Name: "Suco de Laranja Natural", Price: 6.00, Quantity: 1},
			},
			TotalPrice: 28.00,
			CreatedAt:  day("2024-01-12"),
		},
		{
			ID:     "PED-003",
			Status: entity.OrderPreparing,
			Items: []entity.OrderItem{
				{ProductID: "13", Name: "Lasanha à Bolonhesa", Price: 25.00, Quantity: 1},
				{ProductID: "9", Name: "Pudim de Leite", Price: 7.00, Quantity: 2},
			},
			TotalPrice: 39.00,
			CreatedAt:  day("2024-01-10"),
		},
		{
			ID:     "PED-004",
			Status: entity.OrderCancelled,
			Items: []entity.OrderItem{
				{ProductID: "6", Name: "Sanduíche Natural", Price: 12.00, Quantity: 2},
			},
			TotalPrice: 24.00,
			CreatedAt:  day("2024-01-08"),
		},
	}
}
