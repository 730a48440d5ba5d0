package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coppercraft/shop/internal/logging"
	"github.com/coppercraft/shop/internal/service"
	"github.com/coppercraft/shop/internal/transport"
)

type ProductHTTP struct {
	Svc *service.CatalogService
}

func (h *ProductHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()

	category := c.QueryParam("category")
	skip := parseIntDefault(c.QueryParam("skip"), service.DefaultSkip)
	limit := parseIntDefault(c.QueryParam("limit"), service.DefaultLimit)

	products, err := h.Svc.List(ctx, category, skip, limit)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.Create(ctx, currentUser(c), service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Inventory:   req.Inventory,
		ImageURL:    req.ImageURL,
		Dimensions:  req.Dimensions,
		Weight:      req.Weight,
		Material:    req.Material,
		Capacity:    req.Capacity,
	})
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusCreated, product)
}
