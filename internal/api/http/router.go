package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/jobboard-admin/internal/api/http/handlers"
	"github.com/spec-kit/jobboard-admin/internal/auth"
	"github.com/spec-kit/jobboard-admin/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Companies      *handlers.CompaniesHandler
	Jobs           *handlers.JobsHandler
	Dashboard      *handlers.DashboardHandler
	Settings       *handlers.SettingsHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
	// FilesPrefix and FilesDir serve locally stored uploads; empty disables it.
	FilesPrefix string
	FilesDir    string
}

// RegisterRoutes wires HTTP routes. Admin-only routes always pass the auth gate first.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Health)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}
	if cfg.FilesPrefix != "" && cfg.FilesDir != "" {
		app.Static(cfg.FilesPrefix, cfg.FilesDir)
	}

	app.Post("/signup", cfg.Auth.Signup)
	app.Post("/admin/signup", cfg.Auth.AdminSignup)
	app.Post("/signin", cfg.Auth.Signin)

	authed := cfg.AuthMiddleware.Handle
	admin := auth.RequireAdmin()

	companies := app.Group("/companies")
	companies.Get("/", cfg.Companies.List)
	companies.Get("/:id", cfg.Companies.Get)
	companies.Post("/", authed, admin, cfg.Companies.Create)
	companies.Put("/:id", authed, admin, cfg.Companies.Update)
	companies.Patch("/:id", authed, admin, cfg.Companies.Update)
	companies.Delete("/:id", authed, admin, cfg.Companies.Delete)
	companies.Post("/:id/logo", authed, admin, cfg.Companies.UploadLogo)

	jobs := app.Group("/jobs")
	jobs.Get("/", cfg.Jobs.List)
	jobs.Get("/:id", cfg.Jobs.Get)
	jobs.Post("/", authed, admin, cfg.Jobs.Create)
	jobs.Put("/:id", authed, admin, cfg.Jobs.Update)
	jobs.Patch("/:id", authed, admin, cfg.Jobs.Update)
	jobs.Delete("/:id", authed, admin, cfg.Jobs.Delete)

	users := app.Group("/users", authed, admin)
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Post("/", cfg.Users.Create)
	users.Patch("/:id/status", cfg.Users.UpdateStatus)
	users.Delete("/:id", cfg.Users.Delete)

	app.Get("/dashboard", authed, cfg.Dashboard.Get)
	app.Get("/settings", authed, cfg.Settings.Get)
	app.Put("/settings", authed, admin, cfg.Settings.Update)
}
