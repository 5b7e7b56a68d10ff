// Package identity abstracts the authentication backend so a real provider
// can be substituted without touching the session state machine.
package identity

import (
	"context"
	"time"

	"github.com/j0aoarthur/sistema-delivery/internal/entity"
)

// Provider authenticates and registers users.
type Provider interface {
	Authenticate(ctx context.Context, email, password string) (entity.User, error)
	Register(ctx context.Context, name, email, password string) (entity.User, error)
}

// Profile defaults for synthesized users, matching the demo account.
const (
	defaultName    = "Usuário"
	defaultPhone   = "(11) 99999-9999"
	defaultAddress = "Rua das Flores, 123 - São Paulo, SP"
)

// MockProvider simulates a network round-trip with a fixed delay and accepts
// any credentials. The delay honors context cancellation, so an abandoned
// form's in-flight attempt is discarded instead of mutating dead state.
type MockProvider struct {
	Delay time.Duration
}

func NewMockProvider(delay time.Duration) *MockProvider {
	return &MockProvider{Delay: delay}
}

func (m *MockProvider) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(m.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MockProvider) Authenticate(ctx context.Context, email, password string) (entity.User, error) {
	if err := m.wait(ctx); err != nil {
		return entity.User{}, err
	}
	return entity.User{
		Name:    defaultName,
		Email:   email,
		Phone:   defaultPhone,
		Address: defaultAddress,
	}, nil
}

func (m *MockProvider) Register(ctx context.Context, name, email, password string) (entity.User, error) {
	if err := m.wait(ctx); err != nil {
		return entity.User{}, err
	}
	return entity.User{
		Name:    name,
		Email:   email,
		Phone:   defaultPhone,
		Address: defaultAddress,
	}, nil
}
