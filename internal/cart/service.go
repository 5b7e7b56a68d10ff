package cart

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/j0aoarthur/sistema-delivery/internal/entity"
)

// Service orchestrates cart mutations against a Store. Availability is
// checked here, before the cart is touched, so every transport gets the
// same rule.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Get returns the current state of a cart.
func (s *Service) Get(ctx context.Context, cartID string) (*entity.Cart, error) {
	return s.store.Load(ctx, cartID)
}

// AddItem puts one unit of the product into the cart, merging into an
// existing line if present. Unavailable products are rejected.
func (s *Service) AddItem(ctx context.Context, cartID string, p entity.Product) (*entity.Cart, error) {
	if !p.Available {
		return nil, entity.NewValidationError("product", "Produto indisponível no momento.")
	}

	slog.Info("Service: Adding item to cart", "cart_id", cartID, "product_id", p.ID)

	c, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	c.AddItem(p)

	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return c, nil
}

// AddQuantity puts qty units of the product into the cart in one step.
// Used by reorder.
func (s *Service) AddQuantity(ctx context.Context, cartID string, p entity.Product, qty int) (*entity.Cart, error) {
	if !p.Available {
		return nil, entity.NewValidationError("product", "Produto indisponível no momento.")
	}
	if qty <= 0 {
		return nil, entity.NewValidationError("quantity", "A quantidade deve ser positiva.")
	}

	c, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	c.Add(p, qty)

	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return c, nil
}

// RemoveItem deletes a line from the cart. Removing an absent product is a
// no-op.
func (s *Service) RemoveItem(ctx context.Context, cartID, productID string) (*entity.Cart, error) {
	c, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	c.RemoveItem(productID)

	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return c, nil
}

// SetQuantity replaces a line's quantity. Zero removes the line; negative
// quantities are rejected.
func (s *Service) SetQuantity(ctx context.Context, cartID, productID string, quantity int) (*entity.Cart, error) {
	c, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if err := c.SetQuantity(productID, quantity); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return c, nil
}

// Clear drops the cart entirely. Called on logout and after a confirmed
// checkout.
func (s *Service) Clear(ctx context.Context, cartID string) error {
	if err := s.store.Delete(ctx, cartID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
