package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/core/ports"
)

// eventPayload is the wire form of a status event on the redis channel.
type eventPayload struct {
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EncodeEvent marshals a status event to its redis wire form.
func EncodeEvent(event ports.StatusChangedEvent) ([]byte, error) {
	return json.Marshal(eventPayload{
		OrderID:   event.OrderID.String(),
		Status:    event.Status.String(),
		UpdatedAt: event.UpdatedAt,
	})
}

// DecodeEvent unmarshals a status event from its redis wire form.
func DecodeEvent(data []byte) (ports.StatusChangedEvent, error) {
	var payload eventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ports.StatusChangedEvent{}, err
	}

	orderID, err := kernel.UUIDFromString(payload.OrderID)
	if err != nil {
		return ports.StatusChangedEvent{}, err
	}

	status, err := order.StatusFromString(payload.Status)
	if err != nil {
		return ports.StatusChangedEvent{}, err
	}

	return ports.StatusChangedEvent{
		OrderID:   orderID,
		Status:    status,
		UpdatedAt: payload.UpdatedAt,
	}, nil
}

// RedisBridge spans the realtime hub across instances. Publish goes to a
// redis channel instead of the local hub; a subscription loop replays every
// event published by any instance (this one included) into the local hub, so
// clients receive exactly one copy no matter which instance committed the
// transition.
//
// Implements ports.EventPublisher.
type RedisBridge struct {
	client *redis.Client
	hub    *Hub
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRedisBridge creates a bridge and starts its subscription loop.
func NewRedisBridge(client *redis.Client, hub *Hub, logger *slog.Logger) *RedisBridge {
	ctx, cancel := context.WithCancel(context.Background())
	b := &RedisBridge{
		client: client,
		hub:    hub,
		logger: logger.With("component", "realtime-bridge"),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go b.run(ctx)
	return b
}

// Publish sends the event to the order's redis channel.
func (b *RedisBridge) Publish(ctx context.Context, event ports.StatusChangedEvent) error {
	payload, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	return b.client.Publish(ctx, event.Channel(), payload).Err()
}

// Close stops the subscription loop and waits for it to exit.
func (b *RedisBridge) Close() {
	b.cancel()
	<-b.done
}

func (b *RedisBridge) run(ctx context.Context) {
	defer close(b.done)

	pubsub := b.client.PSubscribe(ctx, "order_*")
	defer pubsub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-pubsub.Channel():
			if !ok {
				return
			}

			event, err := DecodeEvent([]byte(msg.Payload))
			if err != nil {
				b.logger.Error("decode status event",
					"channel", msg.Channel,
					"error", err)
				continue
			}

			if err := b.hub.Publish(ctx, event); err != nil {
				b.logger.Error("replay status event",
					"channel", msg.Channel,
					"error", err)
			}
		}
	}
}
