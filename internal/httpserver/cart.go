package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coppercraft/shop/internal/logging"
	"github.com/coppercraft/shop/internal/service"
	"github.com/coppercraft/shop/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	user := currentUser(c)

	cart, err := h.Svc.GetOrCreate(c.Request().Context(), user.ID)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")
	user := currentUser(c)

	var req transport.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.AddItem(ctx, user.ID, req.ProductID, req.Quantity)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_item")
	user := currentUser(c)

	itemID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, removed, err := h.Svc.UpdateItem(ctx, user.ID, itemID, req.Quantity)
	if err != nil {
		return toHTTPError(c, err)
	}
	if removed {
		return c.JSON(http.StatusOK, transport.ItemRemovedResponse{
			ID:      itemID,
			Message: "Item removed from cart",
		})
	}

	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	user := currentUser(c)

	itemID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.RemoveItem(c.Request().Context(), user.ID, itemID); err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Item removed from cart"})
}
