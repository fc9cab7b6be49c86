package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fanstore/internal/core/application/usecases/commands"
	"fanstore/internal/core/application/usecases/queries"
	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/core/domain/model/user"
)

// Server coordinates between HTTP handlers and application use cases.
// Requests carry identity in gateway headers; every handler resolves the
// actor first and lets the use-case layer decide what that actor may do.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getRiderOrdersHandler    queries.GetRiderOrdersQueryHandler
	getRidersHandler         queries.GetRidersQueryHandler
	getSalesReportHandler    queries.GetSalesReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getRiderOrdersHandler queries.GetRiderOrdersQueryHandler,
	getRidersHandler queries.GetRidersQueryHandler,
	getSalesReportHandler queries.GetSalesReportQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getRiderOrdersHandler:    getRiderOrdersHandler,
		getRidersHandler:         getRidersHandler,
		getSalesReportHandler:    getSalesReportHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/pay", s.PayOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)

	api.POST("/admin/orders/:orderID/ship", requireRole(user.RoleAdmin, s.ShipOrder))
	api.GET("/admin/orders", requireRole(user.RoleAdmin, s.GetAllOrders))
	api.GET("/admin/riders", requireRole(user.RoleAdmin, s.GetRiders))
	api.GET("/admin/reports/sales", requireRole(user.RoleAdmin, s.GetSalesReport))

	api.POST("/rider/orders/:orderID/deliver", requireRole(user.RoleRider, s.DeliverOrder))
	api.POST("/rider/orders/:orderID/undeliver", requireRole(user.RoleRider, s.UndeliverOrder))

	api.GET("/customers/:customerID/orders", s.GetCustomerOrders)
	api.GET("/riders/:riderID/orders", s.GetRiderOrders)
}

// CreateOrder handles POST /api/v1/orders - checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		productID, err := kernel.UUIDFromString(line.ProductID)
		if err != nil {
			return writeError(ctx, http.StatusBadRequest, "invalid product id")
		}
		unitPrice, err := kernel.NewMoney(line.UnitPriceCents)
		if err != nil {
			return respondError(ctx, err)
		}
		item, err := order.NewItem(productID, line.Name, line.Size, line.Color, unitPrice, line.Quantity)
		if err != nil {
			return respondError(ctx, err)
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		req.Address.Street,
		req.Address.City,
		req.Address.State,
		req.Address.PostalCode,
		req.Address.Country,
		req.Address.Phone,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		actor.ID(),
		items,
		address,
		paymentMethod,
		req.DiscountPercent,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PayOrder handles POST /api/v1/orders/:orderID/pay.
func (s *Server) PayOrder(ctx echo.Context) error {
	paymentMethod := order.PaymentMethodUnknown

	var req PayOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if req.PaymentMethod != "" {
		var err error
		paymentMethod, err = order.PaymentMethodFromString(req.PaymentMethod)
		if err != nil {
			return respondError(ctx, err)
		}
	}

	return s.transitionOrder(ctx, order.StatusPaid, paymentMethod, nil)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, order.StatusCancelled, order.PaymentMethodUnknown, nil)
}

// ShipOrder handles POST /api/v1/admin/orders/:orderID/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	var req ShipOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	// An absent rider id is a domain condition, not a parse failure: pass
	// nil through so the transition reports ErrRiderRequired.
	if req.RiderID == "" {
		return s.transitionOrder(ctx, order.StatusShipped, order.PaymentMethodUnknown, nil)
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid rider id")
	}

	return s.transitionOrder(ctx, order.StatusShipped, order.PaymentMethodUnknown, &riderID)
}

// DeliverOrder handles POST /api/v1/rider/orders/:orderID/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, order.StatusDelivered, order.PaymentMethodUnknown, nil)
}

// UndeliverOrder handles POST /api/v1/rider/orders/:orderID/undeliver.
func (s *Server) UndeliverOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, order.StatusUndelivered, order.PaymentMethodUnknown, nil)
}

// transitionOrder runs a status change for the order named in the path.
func (s *Server) transitionOrder(
	ctx echo.Context,
	target order.Status,
	paymentMethod order.PaymentMethod,
	riderID *kernel.UUID,
) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actor, target, paymentMethod, riderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	// Respond with the updated order through the read model.
	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}
	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAllOrders handles GET /api/v1/admin/orders.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetAllOrdersQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerOrders handles GET /api/v1/customers/:customerID/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid customer id")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRiderOrders handles GET /api/v1/riders/:riderID/orders.
func (s *Server) GetRiderOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	riderID, err := kernel.UUIDFromString(ctx.Param("riderID"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid rider id")
	}

	query, err := queries.NewGetRiderOrdersQuery(riderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getRiderOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRiders handles GET /api/v1/admin/riders.
func (s *Server) GetRiders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetRidersQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSalesReport handles GET /api/v1/admin/reports/sales.
// Accepts from/to as RFC 3339 timestamps; defaults to the last 24 hours.
func (s *Server) GetSalesReport(ctx echo.Context) error {
	to := time.Now().UTC()
	from := to.Add(-24 * time.Hour)

	if raw := ctx.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return writeError(ctx, http.StatusBadRequest, "invalid from timestamp")
		}
		from = parsed
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return writeError(ctx, http.StatusBadRequest, "invalid to timestamp")
		}
		to = parsed
	}

	query, err := queries.NewGetSalesReportQuery(from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getSalesReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}
