package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_AuthenticateSynthesizesUser(t *testing.T) {
	p := NewMockProvider(5 * time.Millisecond)

	user, err := p.Authenticate(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "Usuário", user.Name)
	assert.Equal(t, "a@b.com", user.Email)
	assert.NotEmpty(t, user.Phone)
	assert.NotEmpty(t, user.Address)
}

func TestMockProvider_RegisterKeepsName(t *testing.T) {
	p := NewMockProvider(0)

	user, err := p.Register(context.Background(), "Ana", "ana@b.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
}

func TestMockProvider_HonorsCancellation(t *testing.T) {
	p := NewMockProvider(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := p.Authenticate(ctx, "a@b.com", "x")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
