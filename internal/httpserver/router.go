package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	Auth     *AuthHTTP
	Catalog  *CatalogHTTP
	Cart     *CartHTTP
	Checkout *CheckoutHTTP
	Ready    func(ctx context.Context) error
	Metrics  http.Handler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Mock E-commerce API is running")
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return c.NoContent(http.StatusServiceUnavailable)
			}
		}
		return c.NoContent(http.StatusOK)
	})
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics))
	}

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", d.Auth.Signup)
	auth.POST("/login", d.Auth.Login)
	auth.GET("/profile", d.Auth.Profile)

	api.GET("/products", d.Catalog.GetProducts)

	cart := api.Group("/cart")
	cart.GET("", d.Cart.GetCart)
	cart.POST("", d.Cart.AddToCart)
	cart.PUT("/:id", d.Cart.UpdateQuantity)
	cart.DELETE("/:id", d.Cart.DeleteFromCart)

	api.POST("/checkout", d.Checkout.Checkout)
	api.POST("/process-payment", d.Checkout.ProcessPayment)
}
