package httpserver

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/coppercraft/shop/internal/logging"
	"github.com/coppercraft/shop/internal/models"
	"github.com/coppercraft/shop/internal/service"
)

const userContextKey = "user"

// RequireUser resolves the Authorization bearer token to a user and stores it
// in the echo context. Every failure is a 401 with a bearer challenge.
func RequireUser(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return unauthorized(c, "could not validate credentials")
			}

			user, err := auth.Authenticate(c.Request().Context(), raw)
			if err != nil {
				return unauthorized(c, "could not validate credentials")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RequestLogger puts a request-scoped logger into the request context so the
// service layer can pull it back out with logging.FromContext.
func RequestLogger(l *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := logging.IntoContext(req.Context(), l.With(
				"method", req.Method,
				"path", req.URL.Path,
			))
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

func currentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}

func unauthorized(c echo.Context, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}
