package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coppercraft/shop/internal/logging"
	"github.com/coppercraft/shop/internal/service"
	"github.com/coppercraft/shop/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

// Token exchanges form credentials for a bearer token.
func (h *AuthHTTP) Token(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.token")

	username := c.FormValue("username")
	password := c.FormValue("password")

	signed, err := h.Svc.Login(ctx, username, password)
	if err != nil {
		l.Warn("token_error", "error", err)
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusOK, transport.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
	})
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req.Email, req.FullName, req.Password)
	if err != nil {
		return toHTTPError(c, err)
	}

	return c.JSON(http.StatusCreated, user)
}
