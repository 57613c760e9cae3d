package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

func TestRequestTimeoutRendersUnavailable(t *testing.T) {
	app := fiber.New(FiberConfig("test", zap.NewNop(), nil))
	RegisterMiddlewares(app, zap.NewNop(), nil, MiddlewareConfig{Timeout: 10 * time.Millisecond})
	app.Get("/slow", func(c *fiber.Ctx) error {
		<-c.UserContext().Done()
		return c.UserContext().Err()
	})

	res := send(t, app, httptest.NewRequest(nethttp.MethodGet, "/slow", nil))
	require.Equal(t, nethttp.StatusServiceUnavailable, res.status)
	require.Equal(t, "Request timed out", res.body["message"])
	require.Equal(t, apperrors.CodeUnavailable, res.body["code"])
	require.Equal(t, apperrors.CodeForStatus(res.status), res.body["code"])
}

func TestFrameworkErrorCodeMatchesStatus(t *testing.T) {
	app := fiber.New(FiberConfig("test", zap.NewNop(), nil))
	RegisterMiddlewares(app, zap.NewNop(), nil, MiddlewareConfig{})
	app.Get("/down", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "maintenance")
	})

	res := send(t, app, httptest.NewRequest(nethttp.MethodGet, "/down", nil))
	require.Equal(t, nethttp.StatusServiceUnavailable, res.status)
	require.Equal(t, apperrors.CodeUnavailable, res.body["code"])
}
