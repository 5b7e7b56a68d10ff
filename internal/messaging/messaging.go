package messaging

import "context"

// Publisher defines an interface for publishing domain events to a message
// broker or an in-process bus.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
}

// Topics carrying the storefront's domain events.
const (
	TopicOrdersPlaced    = "orders.placed"
	TopicSessionActivity = "sessions.activity"
)
