// Package payment abstracts the payment collaborator so a real gateway can
// be substituted without touching checkout.
package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Receipt is the result of a successful charge.
type Receipt struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	Amount     float64   `json:"amount"`
	ApprovedAt time.Time `json:"approved_at"`
}

// Gateway collects payment for an order. The cart is cleared only after a
// charge succeeds.
type Gateway interface {
	Charge(ctx context.Context, orderID string, amount float64) (Receipt, error)
}

// MockGateway approves every charge. Stands in for a real payment backend.
type MockGateway struct{}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) Charge(ctx context.Context, orderID string, amount float64) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	receipt := Receipt{
		ID:         uuid.New().String(),
		OrderID:    orderID,
		Amount:     amount,
		ApprovedAt: time.Now(),
	}
	slog.Info("Payment approved", "order_id", orderID, "amount", amount, "receipt_id", receipt.ID)
	return receipt, nil
}
