// Package realtime tracks websocket subscriptions to per-order channels and
// delivers status events to them. The registry is in-memory only: a
// disconnect forgets every subscription and clients re-join after
// reconnecting.
package realtime

import (
	"context"
	"log/slog"
	"sync"

	"fanstore/internal/core/ports"
)

// Subscriber is one connected client. SendEvent must not block: connection
// implementations buffer writes and drop the slowest clients instead of
// stalling the hub.
type Subscriber interface {
	SendEvent(event ports.StatusChangedEvent)
}

// Hub is the subscription registry. It maps channel names to subscribers and
// fans a published event out to every subscriber of the event's channel.
//
// Implements ports.EventPublisher for single-instance deployments; with
// multiple instances the RedisBridge publishes instead and replays remote
// events into the local hub.
type Hub struct {
	logger *slog.Logger

	mu       sync.RWMutex
	channels map[string]map[Subscriber]struct{}
	subs     map[Subscriber]map[string]struct{}
}

// NewHub creates an empty subscription registry.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:   logger.With("component", "realtime"),
		channels: make(map[string]map[Subscriber]struct{}),
		subs:     make(map[Subscriber]map[string]struct{}),
	}
}

// Join subscribes the client to a channel. Joining twice is a no-op: a
// subscriber receives at most one copy of each event per channel.
func (h *Hub) Join(sub Subscriber, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.channels[channel] == nil {
		h.channels[channel] = make(map[Subscriber]struct{})
	}
	h.channels[channel][sub] = struct{}{}

	if h.subs[sub] == nil {
		h.subs[sub] = make(map[string]struct{})
	}
	h.subs[sub][channel] = struct{}{}
}

// Leave unsubscribes the client from a channel. Leaving a channel that was
// never joined is a no-op.
func (h *Hub) Leave(sub Subscriber, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(sub, channel)
}

// Disconnect removes the client from every channel it joined.
func (h *Hub) Disconnect(sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for channel := range h.subs[sub] {
		h.leaveLocked(sub, channel)
	}
}

func (h *Hub) leaveLocked(sub Subscriber, channel string) {
	if members, ok := h.channels[channel]; ok {
		delete(members, sub)
		if len(members) == 0 {
			delete(h.channels, channel)
		}
	}
	if joined, ok := h.subs[sub]; ok {
		delete(joined, channel)
		if len(joined) == 0 {
			delete(h.subs, sub)
		}
	}
}

// SubscriberCount reports how many clients are joined to a channel.
func (h *Hub) SubscriberCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[channel])
}

// Publish delivers the event to every subscriber of its channel. Publishing
// to a channel with no subscribers is a successful no-op.
func (h *Hub) Publish(_ context.Context, event ports.StatusChangedEvent) error {
	channel := event.Channel()

	h.mu.RLock()
	members := make([]Subscriber, 0, len(h.channels[channel]))
	for sub := range h.channels[channel] {
		members = append(members, sub)
	}
	h.mu.RUnlock()

	for _, sub := range members {
		sub.SendEvent(event)
	}

	h.logger.Debug("published status event",
		"channel", channel,
		"status", event.Status.String(),
		"subscribers", len(members))
	return nil
}
