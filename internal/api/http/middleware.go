package http

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/spec-kit/jobboard-admin/internal/api/http/handlers"
	"github.com/spec-kit/jobboard-admin/internal/observability"
	"github.com/spec-kit/jobboard-admin/internal/repository"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

// MiddlewareConfig tunes the global middleware stack.
type MiddlewareConfig struct {
	Timeout    time.Duration
	CORSOrigin string
}

// FiberConfig returns the app configuration with an error handler that renders
// framework errors (unknown routes, oversized bodies) like every other error.
func FiberConfig(appName string, logger *zap.Logger, metrics *observability.Metrics) fiber.Config {
	return fiber.Config{
		AppName:      appName,
		ErrorHandler: func(c *fiber.Ctx, err error) error { return renderError(c, err, logger, metrics) },
	}
}

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, cfg MiddlewareConfig) {
	app.Use(requestid.New())
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			logger.Error("panic recovered", zap.Any("panic", e), zap.String("path", c.Path()))
		},
	}))
	// logos are embedded by the admin UI from another origin
	app.Use(helmet.New(helmet.Config{CrossOriginResourcePolicy: "cross-origin"}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigin(cfg.CORSOrigin),
		AllowHeaders: strings.Join([]string{
			fiber.HeaderOrigin,
			fiber.HeaderContentType,
			fiber.HeaderAccept,
			fiber.HeaderAuthorization,
			handlers.HeaderAdminInvite,
		}, ", "),
	}))
	if cfg.Timeout > 0 {
		app.Use(requestTimeoutMiddleware(cfg.Timeout))
	}
}

func corsOrigin(origin string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return "*"
	}
	return origin
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return renderError(c, err, logger, metrics)
		}
		return nil
	}
}

// renderError writes {"message","code"[,"errors"][,"details"]} with the mapped status.
func renderError(c *fiber.Ctx, err error, logger *zap.Logger, metrics *observability.Metrics) error {
	domainErr := toDomainError(err)
	metrics.RecordError(routeLabel(c), c.Method(), domainErr.Code)

	response := fiber.Map{
		"message": domainErr.Message,
		"code":    domainErr.Code,
	}
	if len(domainErr.Fields) > 0 {
		response["errors"] = domainErr.Fields
	}
	if len(domainErr.Details) > 0 {
		response["details"] = domainErr.Details
	}
	if domainErr.HTTPStatus >= fiber.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(domainErr))
	}
	return c.Status(domainErr.HTTPStatus).JSON(response)
}

func toDomainError(err error) *apperrors.DomainError {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return apperrors.NewDomainError(apperrors.CodeForStatus(fe.Code), fe.Message, fe.Code, nil)
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.ToDomainError(apperrors.NewNotFound("Resource"))
	case errors.Is(err, repository.ErrDuplicate):
		return apperrors.ToDomainError(apperrors.NewConflict("Resource already exists", nil))
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.ToDomainError(apperrors.NewUnavailable("Request timed out"))
	default:
		return apperrors.ToDomainError(err)
	}
}

func routeLabel(c *fiber.Ctx) string {
	if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
		return r.Path
	}
	return "unmatched"
}
