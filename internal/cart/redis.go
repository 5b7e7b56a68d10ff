package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/j0aoarthur/sistema-delivery/internal/entity"
)

type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a cart store backed by Redis, one JSON value per
// cart ID. Used when REDIS_ADDR is configured so carts survive restarts.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}

func (s *redisStore) Load(ctx context.Context, cartID string) (*entity.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.NewCart(cartID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart %s: %w", cartID, err)
	}

	var c entity.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode cart %s: %w", cartID, err)
	}
	return &c, nil
}

func (s *redisStore) Save(ctx context.Context, c *entity.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart %s: %w", c.ID, err)
	}
	if err := s.client.Set(ctx, cartKey(c.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart %s: %w", c.ID, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart %s: %w", cartID, err)
	}
	return nil
}
