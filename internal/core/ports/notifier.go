package ports

import (
	"context"
	"time"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/core/domain/model/user"
)

// StatusChangedEvent is the payload pushed to realtime subscribers after a
// committed status transition.
type StatusChangedEvent struct {
	OrderID   kernel.UUID
	Status    order.Status
	UpdatedAt time.Time
}

// Channel returns the realtime channel name carrying this event.
func (e StatusChangedEvent) Channel() string {
	return ChannelForOrder(e.OrderID)
}

// ChannelForOrder returns the per-order realtime channel name.
func ChannelForOrder(orderID kernel.UUID) string {
	return "order_" + orderID.String()
}

// EmailSender delivers a rendered email message. Implementations must not
// block the transition request path: the notifier calls them from its own
// worker.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// EventPublisher pushes a status-changed event to every subscriber of the
// order's channel.
type EventPublisher interface {
	Publish(ctx context.Context, event StatusChangedEvent) error
}

// OrderNotifier fans out the side effects of a committed transition. Notify
// is called exactly once per successful transition, after the database
// commit; implementations queue the work and return immediately. Delivery
// failures are logged, never surfaced to the request that caused the
// transition.
type OrderNotifier interface {
	Notify(aggregate *order.Order, customer *user.User)
}
