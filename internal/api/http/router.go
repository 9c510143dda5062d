package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rma-service/internal/api/http/handlers"
	"github.com/spec-kit/rma-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	DistCompanies  *handlers.DistCompaniesHandler
	Products       *handlers.ProductsHandler
	Cases          *handlers.RMACasesHandler
	Invoices       *handlers.InvoicesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Everything under /api except the login
// endpoint requires a valid token; user management additionally requires
// the admin role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Get("/auth", cfg.Auth.Login)

	protected := api.Group("", cfg.AuthMiddleware.Handle)

	users := protected.Group("/users", auth.RequireAdmin())
	users.Get("", cfg.Users.List)
	users.Post("", cfg.Users.Create)
	users.Get("/:public_id", cfg.Users.Get)
	users.Put("/:public_id", cfg.Users.Update)
	users.Delete("/:public_id", cfg.Users.Delete)

	companies := protected.Group("/dist_companies")
	companies.Get("", cfg.DistCompanies.List)
	companies.Post("", cfg.DistCompanies.Create)
	companies.Get("/:id", cfg.DistCompanies.Get)
	companies.Put("/:id", cfg.DistCompanies.Update)
	companies.Delete("/:id", cfg.DistCompanies.Delete)

	products := protected.Group("/products")
	products.Get("", cfg.Products.List)
	products.Post("", cfg.Products.Create)
	products.Get("/ean/:ean", cfg.Products.GetByEAN)
	products.Get("/:id", cfg.Products.Get)
	products.Put("/:id", cfg.Products.Update)
	products.Delete("/:id", cfg.Products.Delete)

	cases := protected.Group("/rma_cases")
	cases.Get("", cfg.Cases.List)
	cases.Post("", cfg.Cases.Create)
	cases.Get("/:id", cfg.Cases.Get)
	cases.Put("/:id", cfg.Cases.Update)
	cases.Post("/:id/status/:new_status", cfg.Cases.ChangeStatus)

	protected.Get("/invoices/dist_companies/:name", cfg.Invoices.Generate)
}
