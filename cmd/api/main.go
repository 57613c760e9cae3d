package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/jobboard-admin/internal/api/http"
	"github.com/spec-kit/jobboard-admin/internal/api/http/handlers"
	"github.com/spec-kit/jobboard-admin/internal/auth"
	"github.com/spec-kit/jobboard-admin/internal/config"
	"github.com/spec-kit/jobboard-admin/internal/events"
	"github.com/spec-kit/jobboard-admin/internal/observability"
	"github.com/spec-kit/jobboard-admin/internal/persistence"
	"github.com/spec-kit/jobboard-admin/internal/repository"
	"github.com/spec-kit/jobboard-admin/internal/repository/memory"
	"github.com/spec-kit/jobboard-admin/internal/service"
	"github.com/spec-kit/jobboard-admin/internal/storage"
	"github.com/spec-kit/jobboard-admin/internal/worker"
)

const shutdownTimeout = 10 * time.Second

type repositories struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	jobs      repository.JobRepository
	settings  repository.SettingsRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.Pool, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	repos := buildRepositories(pg)

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Fatal("failed to init token manager", zap.Error(err))
	}

	var revocations auth.RevocationStore
	if redis != nil {
		revocations = auth.NewRedisRevocationStore(redis.Client, cfg.Auth.TokenTTL)
	} else {
		revocations = auth.NewMemoryRevocationStore(cfg.Auth.TokenTTL)
	}

	dispatcher := events.NewInMemoryDispatcher()
	notifications := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartSessionWorker(dispatcher, revocations, notifications, logger)

	files, err := storage.New(cfg.Storage)
	if err != nil {
		logger.Fatal("failed to init storage", zap.Error(err))
	}

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		Users:      repos.users,
		Hasher:     auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		Tokens:     tokens,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	userService := service.NewUserService(repos.users, authService, dispatcher, logger)
	companyService := service.NewCompanyService(repos.companies, files, logger)
	jobService := service.NewJobService(repos.jobs)
	dashboardService := service.NewDashboardService(repos.users, repos.companies, repos.jobs)
	settingsService := service.NewSettingsService(repos.settings)

	deps := map[string]handlers.Pinger{}
	if pg.Enabled() {
		deps["postgres"] = pg
	}
	if redis != nil {
		deps["redis"] = redis
	}

	metrics := observability.NewMetrics()
	app := fiber.New(httptransport.FiberConfig(cfg.App.Name, logger, metrics))
	httptransport.RegisterMiddlewares(app, logger, metrics, httptransport.MiddlewareConfig{
		Timeout:    cfg.App.RequestTimeout(),
		CORSOrigin: cfg.App.CORSOrigin,
	})

	routes := httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, deps),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Companies:      handlers.NewCompaniesHandler(companyService),
		Jobs:           handlers.NewJobsHandler(jobService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		Settings:       handlers.NewSettingsHandler(settingsService),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, revocations, logger),
		Metrics:        metrics,
	}
	if local, ok := files.(storage.LocalBaseDirProvider); ok {
		routes.FilesPrefix = cfg.Storage.PublicBaseURL
		routes.FilesDir = local.LocalBaseDir()
	}
	httptransport.RegisterRoutes(app, routes)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func buildRepositories(pg *persistence.Postgres) repositories {
	if pg.Enabled() {
		return repositories{
			users:     repository.NewUserRepository(pg.Pool),
			companies: repository.NewCompanyRepository(pg.Pool),
			jobs:      repository.NewJobRepository(pg.Pool),
			settings:  repository.NewSettingsRepository(pg.Pool),
		}
	}
	store := memory.NewStore()
	return repositories{
		users:     store.Users(),
		companies: store.Companies(),
		jobs:      store.Jobs(),
		settings:  store.Settings(),
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
