package ws

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"fanstore/internal/adapters/out/realtime"
	"fanstore/internal/core/ports"
)

const (
	// writeWait bounds a single frame write to a client.
	writeWait = 10 * time.Second

	// pongWait is how long a connection may stay silent before it is
	// considered dead. Pings go out at pingPeriod to keep it below that.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// maxFrameSize caps inbound control frames. Clients only ever send
	// small join/leave payloads.
	maxFrameSize = 512

	// sendBuffer is the per-client outbound queue. A client that cannot
	// drain it loses events instead of stalling the hub.
	sendBuffer = 32
)

// Client is one websocket connection registered with the hub. Events are
// queued on a buffered channel and written by a single pump goroutine, so
// SendEvent never blocks the caller.
type Client struct {
	conn   *websocket.Conn
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	send   chan []byte
}

func newClient(conn *websocket.Conn, logger *slog.Logger) *Client {
	return &Client{
		conn:   conn,
		logger: logger,
		send:   make(chan []byte, sendBuffer),
	}
}

// SendEvent implements realtime.Subscriber. The event is encoded and queued;
// if the client's queue is full the event is dropped.
func (c *Client) SendEvent(event ports.StatusChangedEvent) {
	payload, err := realtime.EncodeEvent(event)
	if err != nil {
		c.logger.Warn("failed to encode event", "error", err)
		return
	}
	c.enqueue(payload)
}

func (c *Client) enqueue(payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	select {
	case c.send <- payload:
	default:
		c.logger.Warn("client send queue full, dropping frame")
	}
}

// shutdown closes the outbound queue, which ends the write pump. Safe to
// call more than once.
func (c *Client) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// writePump drains the outbound queue onto the wire and keeps the
// connection alive with periodic pings. It owns all writes to the socket.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
