// Package order provides order history, checkout and reorder.
package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/j0aoarthur/sistema-delivery/internal/cart"
	"github.com/j0aoarthur/sistema-delivery/internal/catalog"
	"github.com/j0aoarthur/sistema-delivery/internal/entity"
	"github.com/j0aoarthur/sistema-delivery/internal/messaging"
	"github.com/j0aoarthur/sistema-delivery/internal/payment"
	"github.com/j0aoarthur/sistema-delivery/internal/repository"
)

// DeliveryFee is the fixed fee added at the checkout summary. Cart subtotals
// never include it.
const DeliveryFee = 5.00

// CheckoutSummary is returned to the client after a successful checkout.
type CheckoutSummary struct {
	OrderID     string  `json:"order_id"`
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
	ReceiptID   string  `json:"receipt_id"`
}

// Service orchestrates order-related business logic.
type Service struct {
	repo      repository.OrderRepository
	carts     *cart.Service
	catalog   *catalog.Catalog
	gateway   payment.Gateway
	publisher messaging.Publisher
}

func NewService(
	repo repository.OrderRepository,
	carts *cart.Service,
	cat *catalog.Catalog,
	gateway payment.Gateway,
	publisher messaging.Publisher,
) *Service {
	return &Service{
		repo:      repo,
		carts:     carts,
		catalog:   cat,
		gateway:   gateway,
		publisher: publisher,
	}
}

// History returns the latest orders, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]entity.Order, error) {
	return s.repo.FindRecent(ctx, limit)
}

// Checkout charges the cart's total through the payment gateway and, only on
// a confirmed charge, persists the order, publishes OrderPlaced and clears
// the cart.
func (s *Service) Checkout(ctx context.Context, cartID string) (CheckoutSummary, error) {
	c, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return CheckoutSummary{}, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(c.Lines) == 0 {
		return CheckoutSummary{}, entity.NewValidationError("cart", "Seu carrinho está vazio.")
	}

	orderID := uuid.New().String()
	subtotal := c.Subtotal()
	total := subtotal + DeliveryFee

	slog.Info("Service: Checking out cart", "cart_id", cartID, "order_id", orderID, "total", total)

	receipt, err := s.gateway.Charge(ctx, orderID, total)
	if err != nil {
		return CheckoutSummary{}, fmt.Errorf("payment failed: %w", err)
	}

	items := make([]entity.OrderItem, 0, len(c.Lines))
	for _, l := range c.Lines {
		items = append(items, entity.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
		})
	}

	order := entity.Order{
		ID:         orderID,
		Items:      items,
		TotalPrice: total,
		Status:     entity.OrderPending,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return CheckoutSummary{}, fmt.Errorf("failed to save order: %w", err)
	}

	event := entity.OrderPlaced{
		OrderID:    orderID,
		Items:      items,
		TotalPrice: total,
		PlacedAt:   order.CreatedAt,
	}
	if err := s.publisher.PublishEvent(ctx, messaging.TopicOrdersPlaced, orderID, event); err != nil {
		slog.Error("Failed to publish OrderPlaced", "order_id", orderID, "err", err)
	}

	if err := s.carts.Clear(ctx, cartID); err != nil {
		return CheckoutSummary{}, fmt.Errorf("failed to clear cart after checkout: %w", err)
	}

	return CheckoutSummary{
		OrderID:     orderID,
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFee,
		Total:       total,
		ReceiptID:   receipt.ID,
	}, nil
}

// Reorder replays a historical order's line items into the cart through the
// usual add path. Products that left the catalog or are currently
// unavailable are skipped; the returned count is how many lines were
// restored.
func (s *Service) Reorder(ctx context.Context, cartID, orderID string) (int, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to load order %s: %w", orderID, err)
	}

	restored := 0
	for _, item := range o.Items {
		p, ok := s.catalog.ByID(item.ProductID)
		if !ok || !p.Available {
			slog.Info("Skipping unavailable product on reorder", "order_id", orderID, "product_id", item.ProductID)
			continue
		}
		if _, err := s.carts.AddQuantity(ctx, cartID, p, item.Quantity); err != nil {
			return restored, fmt.Errorf("failed to re-add product %s: %w", p.ID, err)
		}
		restored++
	}

	slog.Info("Service: Reorder complete", "order_id", orderID, "restored", restored, "skipped", len(o.Items)-restored)
	return restored, nil
}
