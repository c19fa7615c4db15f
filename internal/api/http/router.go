package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bank-ledger-service/internal/api/http/handlers"
	"github.com/spec-kit/bank-ledger-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Ledger         *handlers.LedgerHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/balance", cfg.Ledger.Balance)
	protected.Post("/deposit", cfg.Ledger.Deposit)
	protected.Post("/withdraw", cfg.Ledger.Withdraw)
}
