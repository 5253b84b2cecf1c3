package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/driving-records/internal/api/http/handlers"
	"github.com/spec-kit/driving-records/internal/auth"
	"github.com/spec-kit/driving-records/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Enquiries      *handlers.EnquiryHandler
	Customers      *handlers.CustomerHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	gate := cfg.AuthMiddleware.Handle

	app.Post("/auth/login", cfg.Auth.Login)

	enq := app.Group("/enq")
	enq.Post("/add", cfg.Enquiries.Create)
	enq.Get("/all", gate, cfg.Enquiries.List)
	enq.Patch("/:id", gate, cfg.Enquiries.Update)
	enq.Delete("/:id", gate, cfg.Enquiries.Delete)

	customers := app.Group("/customers", gate)
	customers.Post("/add", cfg.Customers.Create)
	customers.Get("/all", cfg.Customers.List)
	customers.Patch("/:id", cfg.Customers.Update)
	customers.Delete("/:id", cfg.Customers.Delete)
}
