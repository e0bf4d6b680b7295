package rabbitmq

import "context"

// PublisherInterface lets services publish without holding a live AMQP channel
// in tests.
type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, data any) error
}

var _ PublisherInterface = (*Publisher)(nil)
