package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/business-site-service/internal/api/http/handlers"
	"github.com/spec-kit/business-site-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Portal         *handlers.PortalHandler
	Leads          *handlers.LeadsHandler
	Tips           *handlers.TipsHandler
	Coupons        *handlers.CouponsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	// public surface
	api.Post("/auth/login", cfg.Auth.Login)
	api.Post("/auth/register", cfg.Auth.Register)
	api.Post("/auth/password-reset/request", cfg.Auth.RequestPasswordReset)
	api.Post("/auth/password-reset/confirm", cfg.Auth.ConfirmPasswordReset)

	api.Post("/contact", cfg.Leads.SubmitContact)
	api.Post("/quotes", cfg.Leads.SubmitQuote)

	api.Get("/tips", cfg.Tips.ListPublished)
	api.Get("/tips/:slug", cfg.Tips.GetBySlug)
	api.Get("/coupons", cfg.Coupons.ListCurrent)

	// customer portal
	portal := api.Group("/portal", cfg.AuthMiddleware.Handle, auth.RequireCustomer())
	portal.Get("/profile", cfg.Portal.Profile)
	portal.Put("/profile", cfg.Portal.UpdateProfile)
	portal.Post("/password", cfg.Portal.ChangePassword)

	// back office
	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/leads", cfg.Leads.List)
	admin.Put("/leads/:id/status", cfg.Leads.UpdateStatus)

	admin.Get("/tips", cfg.Tips.ListAll)
	admin.Post("/tips", cfg.Tips.Create)
	admin.Put("/tips/:id", cfg.Tips.Update)
	admin.Post("/tips/:id/publish", cfg.Tips.Publish)
	admin.Post("/tips/:id/unpublish", cfg.Tips.Unpublish)
	admin.Delete("/tips/:id", cfg.Tips.Delete)

	admin.Post("/coupons", cfg.Coupons.Create)
	admin.Post("/coupons/:id/deactivate", cfg.Coupons.Deactivate)
}
