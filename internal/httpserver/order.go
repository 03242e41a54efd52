package httpserver

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/kitchen_control/internal/service"
	"github.com/Skotchmaster/kitchen_control/internal/transport"
	"github.com/Skotchmaster/kitchen_control/pkg/logging"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func parseOrderID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

// failed logs a service error at the level its mapped status calls for and
// returns the response error.
func failed(l *slog.Logger, event, reason string, err error) *echo.HTTPError {
	he := toHTTPError(err)
	if he.Code >= http.StatusInternalServerError {
		l.Error(event, "status", he.Code, "reason", reason, "error", err)
	} else {
		l.Warn(event, "status", he.Code, "reason", he.Message, "error", err)
	}
	return he
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.Create(ctx, req)
	if err != nil {
		return failed(l, "create_order_error", "cannot save order", err)
	}

	l.Info("create_order_success", "order_id", order.OrderID)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	id, err := parseOrderID(c)
	if err != nil {
		l.Warn("get_order_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	order, err := h.Svc.GetByID(ctx, id)
	if err != nil {
		return failed(l, "get_order_error", "cannot get order", err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	orders, err := h.Svc.ListAll(ctx)
	if err != nil {
		return failed(l, "get_orders_error", "cannot list orders", err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete_order")

	id, err := parseOrderID(c)
	if err != nil {
		l.Warn("delete_order_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return failed(l, "delete_order_error", "cannot delete order", err)
	}

	l.Info("delete_order_success", "order_id", id)
	return c.NoContent(http.StatusNoContent)
}
