package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coppercraft/shop/internal/logging"
	"github.com/coppercraft/shop/internal/service"
	"github.com/coppercraft/shop/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")
	user := currentUser(c)

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.Place(ctx, user.ID, req.ShippingAddress)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) List(c echo.Context) error {
	user := currentUser(c)

	orders, err := h.Svc.List(c.Request().Context(), user.ID)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) Get(c echo.Context) error {
	user := currentUser(c)

	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.Svc.Get(c.Request().Context(), user.ID, orderID)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}
