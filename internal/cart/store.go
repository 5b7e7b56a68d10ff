// Package cart manages shopping carts: mutation operations, derived totals
// and pluggable storage.
package cart

import (
	"context"

	"github.com/j0aoarthur/sistema-delivery/internal/entity"
)

// Store handles persistence for carts, keyed by cart ID. Load returns a
// fresh empty cart when none is stored yet.
type Store interface {
	Load(ctx context.Context, cartID string) (*entity.Cart, error)
	Save(ctx context.Context, c *entity.Cart) error
	Delete(ctx context.Context, cartID string) error
}
