package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/jobboard-admin/internal/domain"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

type failingRevocations struct{}

func (failingRevocations) Revoke(context.Context, string, time.Time) error { return nil }
func (failingRevocations) IsRevoked(context.Context, string, time.Time) (bool, error) {
	return false, errors.New("redis down")
}

func newGateApp(t *testing.T, tm *TokenManager, revocations RevocationStore) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"message": de.Message})
		},
	})
	gate := NewAuthMiddleware(tm, revocations, nil)

	app.Get("/me", gate.Handle, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return errors.New("identity missing")
		}
		return c.JSON(fiber.Map{"id": identity.SubjectID, "role": identity.Role})
	})
	app.Post("/admin", gate.Handle, RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusCreated)
	})
	app.Post("/no-auth-gate", RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusCreated)
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestAuthGate(t *testing.T) {
	tm, err := NewTokenManager("gate-secret", time.Hour)
	require.NoError(t, err)
	app := newGateApp(t, tm, nil)

	userTok, err := tm.Issue("u-1", "u@x.com", domain.RoleUser)
	require.NoError(t, err)

	expired, err := NewTokenManager("gate-secret", time.Hour)
	require.NoError(t, err)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredTok, err := expired.Issue("u-1", "u@x.com", domain.RoleUser)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMsg    string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantMsg: "Missing token"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantMsg: "Missing token"},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantMsg: "Missing token"},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized, wantMsg: "Invalid token"},
		{name: "expired token", header: "Bearer " + expiredTok.Token, wantStatus: http.StatusUnauthorized, wantMsg: "Invalid token"},
		{name: "valid token", header: "Bearer " + userTok.Token, wantStatus: http.StatusOK},
		{name: "case-insensitive scheme", header: "bearer " + userTok.Token, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, http.MethodGet, "/me", tt.header)
			require.Equal(t, tt.wantStatus, status)
			if tt.wantMsg != "" {
				require.Equal(t, tt.wantMsg, body["message"])
			} else {
				require.Equal(t, "u-1", body["id"])
			}
		})
	}
}

func TestRoleGate(t *testing.T) {
	tm, err := NewTokenManager("gate-secret", time.Hour)
	require.NoError(t, err)
	app := newGateApp(t, tm, nil)

	userTok, err := tm.Issue("u-1", "u@x.com", domain.RoleUser)
	require.NoError(t, err)
	adminTok, err := tm.Issue("a-1", "a@x.com", domain.RoleAdmin)
	require.NoError(t, err)

	status, body := doRequest(t, app, http.MethodPost, "/admin", "Bearer "+userTok.Token)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "Access denied: Admin only", body["message"])

	status, _ = doRequest(t, app, http.MethodPost, "/admin", "Bearer "+adminTok.Token)
	require.Equal(t, http.StatusCreated, status)

	status, _ = doRequest(t, app, http.MethodPost, "/admin", "")
	require.Equal(t, http.StatusUnauthorized, status)

	// a role gate without identity never lets the request through
	status, _ = doRequest(t, app, http.MethodPost, "/no-auth-gate", "Bearer "+adminTok.Token)
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestAuthGate_Revocation(t *testing.T) {
	tm, err := NewTokenManager("gate-secret", time.Hour)
	require.NoError(t, err)
	store := NewMemoryRevocationStore(time.Hour)
	app := newGateApp(t, tm, store)

	tok, err := tm.Issue("u-1", "u@x.com", domain.RoleUser)
	require.NoError(t, err)

	status, _ := doRequest(t, app, http.MethodGet, "/me", "Bearer "+tok.Token)
	require.Equal(t, http.StatusOK, status)

	require.NoError(t, store.Revoke(context.Background(), "u-1", time.Now()))

	status, body := doRequest(t, app, http.MethodGet, "/me", "Bearer "+tok.Token)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "Invalid token", body["message"])
}

func TestAuthGate_RevocationLookupFailureFailsOpen(t *testing.T) {
	tm, err := NewTokenManager("gate-secret", time.Hour)
	require.NoError(t, err)
	app := newGateApp(t, tm, failingRevocations{})

	tok, err := tm.Issue("u-1", "u@x.com", domain.RoleUser)
	require.NoError(t, err)

	status, _ := doRequest(t, app, http.MethodGet, "/me", "Bearer "+tok.Token)
	require.Equal(t, http.StatusOK, status)
}
