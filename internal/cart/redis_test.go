package cart

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client)
}

func TestRedisStore_LoadMissingReturnsEmptyCart(t *testing.T) {
	store := newTestRedisStore(t)

	c, err := store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", c.ID)
	assert.Empty(t, c.Lines)
}

func TestRedisStore_SaveAndLoad(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	c, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	c.AddItem(coke)
	c.AddItem(coke)
	require.NoError(t, store.Save(ctx, c))

	reloaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, reloaded.Lines, 1)
	assert.Equal(t, 2, reloaded.Lines[0].Quantity)
	assert.Equal(t, coke.Name, reloaded.Lines[0].Name)
}

func TestRedisStore_Delete(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	c, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	c.AddItem(coke)
	require.NoError(t, store.Save(ctx, c))

	require.NoError(t, store.Delete(ctx, "s1"))

	reloaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, reloaded.Lines)
}
