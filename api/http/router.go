package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kaustubh-git5/my-mvp-startup-backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	api.Post("/register", auth.Register)
	api.Post("/login", auth.Login)
	api.Get("/me", authMW, auth.Me)
}
