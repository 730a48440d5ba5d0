package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coppercraft/shop/internal/service"
)

type Deps struct {
	AuthSvc        *service.AuthService
	AuthHandler    *AuthHTTP
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	SeedHandler    *SeedHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := RequireUser(d.AuthSvc)

	e.POST("/token", d.AuthHandler.Token)
	e.POST("/users", d.AuthHandler.Register)

	e.GET("/products", d.ProductHandler.List)
	e.GET("/products/:id", d.ProductHandler.Get)
	e.POST("/products", d.ProductHandler.Create, authMW)

	cart := e.Group("/cart", authMW)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/items", d.CartHandler.AddItem)
	cart.PUT("/items/:id", d.CartHandler.UpdateItem)
	cart.DELETE("/items/:id", d.CartHandler.RemoveItem)

	orders := e.Group("/orders", authMW)
	orders.POST("", d.OrderHandler.Create)
	orders.GET("", d.OrderHandler.List)
	orders.GET("/:id", d.OrderHandler.Get)

	e.POST("/seed-data", d.SeedHandler.Run)
}
