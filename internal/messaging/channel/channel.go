// Package channel provides an in-process event bus built on Watermill's
// gochannel Pub/Sub. It is the demo default: no broker required, events stay
// inside the process.
package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// Bus is an in-process publisher/subscriber.
type Bus struct {
	pubSub *gochannel.GoChannel
}

// NewBus creates the in-process bus.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger)),
	}
}

// PublishEvent JSON-encodes the event and publishes it on topic. The key is
// carried as message metadata.
func (b *Bus) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(uuid.New().String(), payload)
	msg.Metadata.Set("key", key)
	msg.SetContext(ctx)

	return b.pubSub.Publish(topic, msg)
}

// Subscribe returns a channel of messages published on topic. Subscribers
// must be attached before the first publish they care about.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, topic)
}

// Close shuts the bus down and closes all subscriber channels.
func (b *Bus) Close() error {
	return b.pubSub.Close()
}
