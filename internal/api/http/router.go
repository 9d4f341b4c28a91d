package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/api/http/handlers"
	"github.com/spec-kit/shop-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Orders         *handlers.OrdersHandler
	AuthMiddleware *auth.Middleware
	StaticDir      string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/register", cfg.Auth.Register)
	api.Post("/login", cfg.Auth.Login)
	api.Post("/auth/logout", cfg.Auth.Logout)
	api.Post("/auth/password/reset/request", cfg.Auth.RequestPasswordReset)
	api.Post("/auth/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/me", cfg.Auth.Me)
	protected.Get("/orders", cfg.Orders.List)
	protected.Post("/checkout", cfg.Orders.Checkout)

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}
}
