package cart

import (
	"context"
	"sync"

	"github.com/j0aoarthur/sistema-delivery/internal/entity"
)

type memoryStore struct {
	mu    sync.RWMutex
	carts map[string]*entity.Cart
}

// NewMemoryStore creates an in-memory cart store. This is the demo default;
// carts reset on process restart.
func NewMemoryStore() Store {
	return &memoryStore{carts: make(map[string]*entity.Cart)}
}

func (s *memoryStore) Load(ctx context.Context, cartID string) (*entity.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.carts[cartID]; ok {
		return c.Clone(), nil
	}
	return entity.NewCart(cartID), nil
}

func (s *memoryStore) Save(ctx context.Context, c *entity.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[c.ID] = c.Clone()
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, cartID)
	return nil
}
