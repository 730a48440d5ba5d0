package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/coppercraft/shop/internal/service"
)

// toHTTPError maps the service sentinels onto HTTP statuses. Anything
// unrecognized is a 500 with no detail leaked to the caller.
func toHTTPError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, detail(err))
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorized(c, detail(err))
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, detail(err))
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, detail(err))
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

// detail strips the sentinel prefix from a wrapped service error, leaving the
// human-readable part.
func detail(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
