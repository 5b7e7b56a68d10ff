package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j0aoarthur/sistema-delivery/internal/entity"
	"github.com/j0aoarthur/sistema-delivery/internal/repository"
)

func TestOrderRepository_SeededHistory(t *testing.T) {
	repo := NewOrderRepository()

	orders, err := repo.FindRecent(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, orders, 4)

	// Newest first.
	assert.Equal(t, "PED-001", orders[0].ID)
	assert.Equal(t, "PED-002", orders[1].ID)
	assert.Equal(t, "PED-003", orders[2].ID)
	assert.Equal(t, "PED-004", orders[3].ID)

	assert.InDelta(t, 35.00, orders[0].TotalPrice, 1e-9)
	assert.Equal(t, entity.OrderPreparing, orders[2].Status)
}

func TestOrderRepository_FindRecentLimit(t *testing.T) {
	repo := NewOrderRepository()

	orders, err := repo.FindRecent(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderRepository_SaveAndFindByID(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	order := entity.Order{
		ID:         "PED-100",
		Status:     entity.OrderPending,
		Items:      []entity.OrderItem{{ProductID: "1", Name: "Coca-Cola 350ml", Price: 4.50, Quantity: 1}},
		TotalPrice: 9.50,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Save(ctx, order))

	got, err := repo.FindByID(ctx, "PED-100")
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	recent, err := repo.FindRecent(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, "PED-100", recent[0].ID)
}

func TestOrderRepository_FindByIDMissing(t *testing.T) {
	repo := NewOrderRepository()

	_, err := repo.FindByID(context.Background(), "PED-999")
	require.ErrorIs(t, err, repository.ErrOrderNotFound)
}
