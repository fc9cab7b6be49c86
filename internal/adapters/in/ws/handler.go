// Package ws exposes the realtime hub over websocket connections. A client
// connects once, then joins and leaves per-order channels with small JSON
// frames; status events for joined channels are streamed back to it.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"fanstore/internal/adapters/out/realtime"
	"fanstore/internal/core/application/usecases/queries"
	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/core/domain/model/user"
	"fanstore/internal/core/ports"
)

// SubscriptionAuthorizer decides whether an actor may watch an order's
// channel. Visibility follows the read model: admins see everything,
// customers their own orders and riders the orders assigned to them.
type SubscriptionAuthorizer interface {
	CanSubscribe(ctx context.Context, actor order.Actor, orderID kernel.UUID) error
}

// OrderAccessAuthorizer authorizes subscriptions by running the single-order
// read query: whoever may read an order may watch its status channel.
type OrderAccessAuthorizer struct {
	orders queries.GetOrderQueryHandler
}

// NewOrderAccessAuthorizer creates an authorizer backed by the order read query.
func NewOrderAccessAuthorizer(orders queries.GetOrderQueryHandler) OrderAccessAuthorizer {
	return OrderAccessAuthorizer{orders: orders}
}

// CanSubscribe returns nil when the actor may read the order.
func (a OrderAccessAuthorizer) CanSubscribe(
	ctx context.Context,
	actor order.Actor,
	orderID kernel.UUID,
) error {
	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return err
	}
	_, err = a.orders.Handle(ctx, query)
	return err
}

// clientFrame is an inbound join/leave request.
type clientFrame struct {
	Action  string `json:"action"`
	OrderID string `json:"orderId"`
}

// serverFrame acknowledges a request or reports why it was refused.
type serverFrame struct {
	Type    string `json:"type"`
	Channel string `json:"channel,omitempty"`
	Message string `json:"message,omitempty"`
}

// Handler upgrades HTTP requests to websocket connections and serves the
// join/leave protocol on them.
type Handler struct {
	hub      *realtime.Hub
	auth     SubscriptionAuthorizer
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates a websocket handler bound to the hub.
func NewHandler(hub *realtime.Hub, auth SubscriptionAuthorizer, logger *slog.Logger) *Handler {
	return &Handler{
		hub:  hub,
		auth: auth,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The authenticating gateway in front of this service owns
			// origin policy.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "ws"),
	}
}

// RegisterRoutes mounts the websocket endpoint.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", h.Serve)
}

// Serve handles GET /ws. Identity comes from the same gateway headers the
// REST API trusts; the upgrade is refused without them.
func (h *Handler) Serve(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx.Request())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// Upgrade already wrote the failure response.
		return nil
	}

	client := newClient(conn, h.logger)
	go client.writePump()

	h.readLoop(ctx.Request().Context(), conn, client, actor)

	h.hub.Disconnect(client)
	client.shutdown()
	return nil
}

// readLoop consumes join/leave frames until the connection drops.
func (h *Handler) readLoop(
	ctx context.Context,
	conn *websocket.Conn,
	client *Client,
	actor order.Actor,
) {
	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var frame clientFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			client.reject("invalid frame")
			continue
		}

		h.handleFrame(ctx, client, actor, frame)
	}
}

func (h *Handler) handleFrame(
	ctx context.Context,
	client *Client,
	actor order.Actor,
	frame clientFrame,
) {
	orderID, err := kernel.UUIDFromString(frame.OrderID)
	if err != nil {
		client.reject("invalid order id")
		return
	}
	channel := ports.ChannelForOrder(orderID)

	switch frame.Action {
	case "join":
		if err := h.auth.CanSubscribe(ctx, actor, orderID); err != nil {
			h.logger.Info("subscription refused",
				"actor_id", actor.ID().String(),
				"order_id", orderID.String())
			client.reject("order not found")
			return
		}
		h.hub.Join(client, channel)
		client.acknowledge("joined", channel)

	case "leave":
		h.hub.Leave(client, channel)
		client.acknowledge("left", channel)

	default:
		client.reject("unknown action")
	}
}

// actorFromHeaders builds the acting identity from the gateway headers.
func actorFromHeaders(r *http.Request) (order.Actor, error) {
	id, err := kernel.UUIDFromString(r.Header.Get("X-User-Id"))
	if err != nil {
		return order.Actor{}, err
	}
	role, err := user.RoleFromString(r.Header.Get("X-User-Role"))
	if err != nil {
		return order.Actor{}, err
	}
	return order.NewActor(id, role)
}

func (c *Client) acknowledge(frameType, channel string) {
	c.sendFrame(serverFrame{Type: frameType, Channel: channel})
}

func (c *Client) reject(message string) {
	c.sendFrame(serverFrame{Type: "error", Message: message})
}

func (c *Client) sendFrame(frame serverFrame) {
	payload, err := json.Marshal(frame)
	if err != nil {
		return
	}
	c.enqueue(payload)
}
