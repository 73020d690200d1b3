package port

import (
	"context"

	"crowdfund/internal/core/domain"
)

// EventPublisher delivers committed escrow events to interested parties.
// Delivery is best-effort; the escrow never depends on it.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
