// Package session owns the authenticated-user lifecycle and the navigation
// state machine. State lives in explicit structs held by the Manager and is
// handed to callers by value, never through ambient globals.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/j0aoarthur/sistema-delivery/internal/cart"
	"github.com/j0aoarthur/sistema-delivery/internal/entity"
	"github.com/j0aoarthur/sistema-delivery/internal/identity"
	"github.com/j0aoarthur/sistema-delivery/internal/messaging"
)

// Validation messages surfaced at the form boundary.
const (
	msgMissingFields    = "Por favor, preencha todos os campos."
	msgInvalidEmail     = "Por favor, insira um email válido."
	msgPasswordMismatch = "As senhas não coincidem."
	msgPasswordTooShort = "A senha deve ter pelo menos 6 caracteres."
)

// State is the per-session view of the world: the authenticated user, the
// navigation state and the cart this session owns.
type State struct {
	Token     string      `json:"token"`
	User      entity.User `json:"user"`
	Nav       NavState    `json:"nav"`
	CartID    string      `json:"-"`
	CreatedAt time.Time   `json:"-"`
}

// Manager creates and destroys sessions and applies navigation transitions.
type Manager struct {
	provider  identity.Provider
	carts     *cart.Service
	publisher messaging.Publisher

	mu       sync.RWMutex
	sessions map[string]*State
}

func NewManager(provider identity.Provider, carts *cart.Service, publisher messaging.Publisher) *Manager {
	return &Manager{
		provider:  provider,
		carts:     carts,
		publisher: publisher,
		sessions:  make(map[string]*State),
	}
}

func validEmail(email string) bool {
	return strings.Contains(email, "@")
}

// Login validates the form, authenticates against the identity provider and
// creates a session. The provider call honors ctx, so navigating away
// cancels an in-flight attempt.
func (m *Manager) Login(ctx context.Context, email, password string) (State, error) {
	if email == "" || password == "" {
		return State{}, entity.NewValidationError("credentials", msgMissingFields)
	}
	if !validEmail(email) {
		return State{}, entity.NewValidationError("email", msgInvalidEmail)
	}

	user, err := m.provider.Authenticate(ctx, email, password)
	if err != nil {
		return State{}, fmt.Errorf("authentication failed: %w", err)
	}

	state := m.create(user)

	if err := m.publisher.PublishEvent(ctx, messaging.TopicSessionActivity, user.Email, entity.UserLoggedIn{
		Email:    user.Email,
		LoggedAt: time.Now(),
	}); err != nil {
		slog.Error("Failed to publish UserLoggedIn", "err", err)
	}

	slog.Info("Session created", "email", user.Email)
	return state, nil
}

// Register validates the registration form, registers the user and creates
// a session, exactly as a successful login would.
func (m *Manager) Register(ctx context.Context, name, email, password, confirmPassword string) (State, error) {
	if name == "" || email == "" || password == "" || confirmPassword == "" {
		return State{}, entity.NewValidationError("fields", msgMissingFields)
	}
	if !validEmail(email) {
		return State{}, entity.NewValidationError("email", msgInvalidEmail)
	}
	if password != confirmPassword {
		return State{}, entity.NewValidationError("confirm_password", msgPasswordMismatch)
	}
	if len(password) < 6 {
		return State{}, entity.NewValidationError("password", msgPasswordTooShort)
	}

	user, err := m.provider.Register(ctx, name, email, password)
	if err != nil {
		return State{}, fmt.Errorf("registration failed: %w", err)
	}

	state := m.create(user)

	if err := m.publisher.PublishEvent(ctx, messaging.TopicSessionActivity, user.Email, entity.UserRegistered{
		Name:         user.Name,
		Email:        user.Email,
		RegisteredAt: time.Now(),
	}); err != nil {
		slog.Error("Failed to publish UserRegistered", "err", err)
	}

	slog.Info("Session created via registration", "email", user.Email)
	return state, nil
}

func (m *Manager) create(user entity.User) State {
	token := uuid.New().String()

	nav := DefaultNav()
	nav.EnterMenu()

	state := &State{
		Token:     token,
		User:      user,
		Nav:       nav,
		CartID:    token,
		CreatedAt: time.Now(),
	}

	m.mu.Lock()
	m.sessions[token] = state
	m.mu.Unlock()

	return *state
}

// Logout destroys the session, resets navigation to the login screen and
// drops the cart. Cart contents are not persisted per user; that is an
// intentional simplification. Logout of an unknown token is a no-op.
func (m *Manager) Logout(ctx context.Context, token string) error {
	m.mu.Lock()
	state, ok := m.sessions[token]
	if ok {
		state.Nav.Reset()
		delete(m.sessions, token)
	}
	m.mu.Unlock()

	if !ok {
		return nil
	}

	if err := m.carts.Clear(ctx, state.CartID); err != nil {
		return fmt.Errorf("failed to drop cart on logout: %w", err)
	}

	slog.Info("Session destroyed", "email", state.User.Email)
	return nil
}

// Get looks a session up by token.
func (m *Manager) Get(token string) (State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[token]
	if !ok {
		return State{}, false
	}
	return *state, true
}

// UpdateProfile edits the session user's profile fields. The mocked backend
// save always succeeds once validation passes.
func (m *Manager) UpdateProfile(token string, user entity.User) (State, error) {
	if user.Name == "" || user.Email == "" {
		return State{}, entity.NewValidationError("fields", msgMissingFields)
	}
	if !validEmail(user.Email) {
		return State{}, entity.NewValidationError("email", msgInvalidEmail)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[token]
	if !ok {
		return State{}, fmt.Errorf("unknown session")
	}
	state.User = user
	return *state, nil
}

// Navigate applies an inner-menu transition.
func (m *Manager) Navigate(token string, view MenuView) (State, bool) {
	return m.mutate(token, func(s *State) { s.Nav.SelectView(view) })
}

// SelectCategory changes the category shown on the home view.
func (m *Manager) SelectCategory(token string, c entity.Category) (State, bool) {
	return m.mutate(token, func(s *State) { s.Nav.SelectCategory(c) })
}

// SetCartOpen opens or closes the cart panel.
func (m *Manager) SetCartOpen(token string, open bool) (State, bool) {
	return m.mutate(token, func(s *State) { s.Nav.SetCartOpen(open) })
}

func (m *Manager) mutate(token string, fn func(*State)) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[token]
	if !ok {
		return State{}, false
	}
	fn(state)
	return *state, true
}
