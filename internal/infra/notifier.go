package infra

import (
	"context"
	"time"

	"marketplace-service/internal/infra/rabbitmq"
)

// EventNotifier publishes notification envelopes to the topic exchange with
// the event kind as routing key. The downstream dispatcher renders the
// user-facing message.
type EventNotifier struct {
	publisher rabbitmq.PublisherInterface
}

func NewEventNotifier(pub rabbitmq.PublisherInterface) *EventNotifier {
	return &EventNotifier{publisher: pub}
}

func (n *EventNotifier) Notify(ctx context.Context, userID, kind string, payload map[string]any) error {
	return n.publisher.Publish(ctx, kind, map[string]any{
		"userId":    userID,
		"kind":      kind,
		"payload":   payload,
		"createdAt": time.Now().UTC(),
	})
}
