// Package notify implements the notification fan-out for committed order
// transitions: one templated email to the customer plus one realtime event
// on the order's channel, delivered off the request path.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fanstore/internal/adapters/out/mail"
	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/core/domain/model/user"
	"fanstore/internal/core/ports"
)

const (
	defaultQueueSize   = 256
	defaultSendTimeout = 10 * time.Second
)

// delivery is one committed transition waiting for fan-out. The email is
// rendered at enqueue time so the worker never touches the aggregate again.
type delivery struct {
	event   ports.StatusChangedEvent
	email   string
	subject string
	body    string
}

// FanOutNotifier fans out committed transitions to email and realtime
// subscribers. A single worker goroutine drains a FIFO queue, so per-order
// notification order always matches commit order. Delivery failures are
// logged and swallowed: a transition that committed must never fail because
// a relay or subscriber is down.
//
// Implements ports.OrderNotifier.
type FanOutNotifier struct {
	email  ports.EmailSender
	events ports.EventPublisher
	logger *slog.Logger

	queue       chan delivery
	sendTimeout time.Duration

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// NewFanOutNotifier creates a notifier and starts its worker.
func NewFanOutNotifier(
	email ports.EmailSender,
	events ports.EventPublisher,
	logger *slog.Logger,
) *FanOutNotifier {
	n := &FanOutNotifier{
		email:       email,
		events:      events,
		logger:      logger.With("component", "notifier"),
		queue:       make(chan delivery, defaultQueueSize),
		sendTimeout: defaultSendTimeout,
		done:        make(chan struct{}),
	}

	go n.run()
	return n
}

// Notify queues the fan-out for a committed transition and returns
// immediately. When the queue is full the delivery is dropped with a log
// line rather than stalling the request that caused the transition.
func (n *FanOutNotifier) Notify(aggregate *order.Order, customer *user.User) {
	event := ports.StatusChangedEvent{
		OrderID:   aggregate.ID(),
		Status:    aggregate.Status(),
		UpdatedAt: aggregate.UpdatedAt(),
	}

	d := delivery{
		event:   event,
		subject: mail.StatusSubject(aggregate),
	}

	if customer != nil {
		d.email = customer.Email()
		body, err := mail.RenderStatusEmail(aggregate, customer)
		if err != nil {
			n.logger.Error("render status email",
				"orderId", aggregate.ID().String(),
				"status", aggregate.Status().String(),
				"error", err)
			d.email = ""
		} else {
			d.body = body
		}
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		n.logger.Warn("notifier closed, dropping notification",
			"orderId", event.OrderID.String())
		return
	}

	select {
	case n.queue <- d:
	default:
		n.logger.Warn("notification queue full, dropping notification",
			"orderId", event.OrderID.String(),
			"status", event.Status.String())
	}
}

// Close stops accepting notifications, drains the queue and waits for the
// worker to finish the in-flight deliveries.
func (n *FanOutNotifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	close(n.queue)
	n.mu.Unlock()

	<-n.done
}

func (n *FanOutNotifier) run() {
	defer close(n.done)

	for d := range n.queue {
		n.dispatch(d)
	}
}

func (n *FanOutNotifier) dispatch(d delivery) {
	ctx, cancel := context.WithTimeout(context.Background(), n.sendTimeout)
	defer cancel()

	if err := n.events.Publish(ctx, d.event); err != nil {
		n.logger.Error("publish status event",
			"orderId", d.event.OrderID.String(),
			"channel", d.event.Channel(),
			"error", err)
	}

	if d.email == "" {
		return
	}

	if err := n.email.Send(ctx, d.email, d.subject, d.body); err != nil {
		n.logger.Error("send status email",
			"orderId", d.event.OrderID.String(),
			"to", d.email,
			"error", err)
	}
}
