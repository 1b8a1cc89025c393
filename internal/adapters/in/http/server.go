package http

import (
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"
	"orders/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const serviceName = "Orders Service"

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases. Handlers return
// use case errors untouched; the HTTP error handler renders them.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	clock ports.Clock
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	clock ports.Clock,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		clock:                    clock,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.HealthResponse{
		Success: true,
		Data: servers.HealthStatus{
			Status:    "OK",
			Service:   serviceName,
			Timestamp: s.clock.Now().UTC(),
		},
	})
}

// ListOrders handles GET /v1/orders - lists the orders visible to the caller.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(IdentityFrom(ctx), toListOrdersParams(params))
	if err != nil {
		return err
	}

	selection, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderListResponse{
		Success: true,
		Data:    toOrderList(selection),
	})
}

// CreateOrder handles POST /v1/orders - creates an order owned by the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(IdentityFrom(ctx), toItemInputs(body.Items))
	if err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.OrderResponse{
		Success: true,
		Data:    toOrder(created),
	})
}

// GetOrder handles GET /v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(IdentityFrom(ctx), orderID)
	if err != nil {
		return err
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderResponse{
		Success: true,
		Data:    toOrder(found),
	})
}

// UpdateOrderStatus handles PATCH /v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(IdentityFrom(ctx), orderID, valueOf(body.Status))
	if err != nil {
		return err
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderResponse{
		Success: true,
		Data:    toOrder(updated),
	})
}

// CancelOrder handles POST /v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewCancelOrderCommand(IdentityFrom(ctx), orderID)
	if err != nil {
		return err
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderResponse{
		Success: true,
		Data:    toOrder(cancelled),
	})
}
