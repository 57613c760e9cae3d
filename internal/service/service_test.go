package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/jobboard-admin/internal/auth"
	"github.com/spec-kit/jobboard-admin/internal/config"
	"github.com/spec-kit/jobboard-admin/internal/events"
	"github.com/spec-kit/jobboard-admin/internal/repository/memory"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

type fixture struct {
	store      *memory.Store
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	auth       *AuthService
	users      *UserService
	companies  *CompanyService
	jobs       *JobService
}

func newFixture(t *testing.T, cfg config.AuthConfig) *fixture {
	t.Helper()
	tokens, err := auth.NewTokenManager("service-secret", time.Hour)
	require.NoError(t, err)

	store := memory.NewStore()
	dispatcher := events.NewInMemoryDispatcher()
	authService := NewAuthService(cfg, AuthDependencies{
		Users:      store.Users(),
		Hasher:     auth.NewPasswordHasher(bcrypt.MinCost),
		Tokens:     tokens,
		Dispatcher: dispatcher,
		Logger:     zap.NewNop(),
	})
	return &fixture{
		store:      store,
		tokens:     tokens,
		dispatcher: dispatcher,
		auth:       authService,
		users:      NewUserService(store.Users(), authService, dispatcher, zap.NewNop()),
		companies:  NewCompanyService(store.Companies(), nil, zap.NewNop()),
		jobs:       NewJobService(store.Jobs()),
	}
}

func defaultAuthConfig() config.AuthConfig {
	return config.AuthConfig{AdminSignupEnabled: true}
}

func requireCode(t *testing.T, err error, code string) *apperrors.DomainError {
	t.Helper()
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	require.Equal(t, code, de.Code, de.Message)
	return de
}

func ptr[T any](v T) *T { return &v }
