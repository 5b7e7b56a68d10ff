package entity

import "time"

// Event represents a domain event.
type Event interface {
	EventType() string
}

// OrderPlaced is emitted when a checkout completes successfully.
type OrderPlaced struct {
	OrderID    string      `json:"order_id"`
	Items      []OrderItem `json:"items"`
	TotalPrice float64     `json:"total_price"`
	PlacedAt   time.Time   `json:"placed_at"`
}

func (e OrderPlaced) EventType() string { return "OrderPlaced" }

// UserLoggedIn is emitted when a login attempt succeeds.
type UserLoggedIn struct {
	Email    string    `json:"email"`
	LoggedAt time.Time `json:"logged_at"`
}

func (e UserLoggedIn) EventType() string { return "UserLoggedIn" }

// UserRegistered is emitted when a registration succeeds.
type UserRegistered struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

func (e UserRegistered) EventType() string { return "UserRegistered" }
