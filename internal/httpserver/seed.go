package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coppercraft/shop/internal/seed"
	"github.com/coppercraft/shop/internal/transport"
)

// SeedHTTP exposes the development-only seeding endpoint.
type SeedHTTP struct {
	Seeder *seed.Seeder
}

func (h *SeedHTTP) Run(c echo.Context) error {
	msg, err := h.Seeder.Run(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.MessageResponse{Message: msg})
}
