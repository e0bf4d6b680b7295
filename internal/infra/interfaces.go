package infra

import "context"

// Notifier is the fire-and-forget notification contract. Delivery failures
// never fail the operation that triggered them.
type Notifier interface {
	Notify(ctx context.Context, userID, kind string, payload map[string]any) error
}

var _ Notifier = (*EventNotifier)(nil)
