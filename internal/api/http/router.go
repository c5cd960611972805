package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/api/http/handlers"
	"github.com/spec-kit/inventory-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Inventory      *handlers.InventoryHandler
	Activity       *handlers.ActivityHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/profile", cfg.AuthMiddleware.Handle, cfg.Auth.Profile)

	inventory := api.Group("/inventory", cfg.AuthMiddleware.Handle)
	inventory.Get("/stats", cfg.Activity.Stats)
	inventory.Get("/activity", cfg.Activity.Recent)
	inventory.Get("/activity/all", cfg.Activity.All)
	inventory.Get("/analytics", cfg.Activity.Analytics)
	inventory.Post("/", cfg.Inventory.Create)
	inventory.Get("/", cfg.Inventory.List)
	inventory.Put("/:id", cfg.Inventory.Update)
	inventory.Delete("/:id", cfg.Inventory.Delete)
}
