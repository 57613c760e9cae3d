package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/jobboard-admin/internal/config"
	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/events"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

func TestSignup_ThenDuplicateConflicts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultAuthConfig())

	var registered []events.Event
	f.dispatcher.Subscribe(events.EventUserRegistered, func(_ context.Context, e events.Event) error {
		registered = append(registered, e)
		return nil
	})

	user, token, err := f.auth.Signup(ctx, SignupInput{Name: " Ann ", Email: " a@x.com ", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "Ann", user.Name)
	require.Equal(t, "a@x.com", user.Email)
	require.Equal(t, domain.RoleUser, user.Role)
	require.NotEqual(t, "secret1", user.PasswordHash)
	require.NotEmpty(t, token.Token)

	identity, err := f.tokens.Verify(token.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, identity.SubjectID)

	_, _, err = f.auth.Signup(ctx, SignupInput{Name: "Impostor", Email: "a@x.com", Password: "other99"})
	de := requireCode(t, err, apperrors.CodeConflict)
	require.Equal(t, "Email already registered", de.Message)

	stored, err := f.store.Users().GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, stored.ID)
	require.Equal(t, "Ann", stored.Name)

	require.Len(t, registered, 1)
	require.Equal(t, ViaSignup, registered[0].Payload.(events.UserRegisteredPayload).Via)
}

func TestSignin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultAuthConfig())

	created, _, err := f.auth.Signup(ctx, SignupInput{Name: "Ann", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	user, token, err := f.auth.Signin(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
	identity, err := f.tokens.Verify(token.Token)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", identity.Email)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "one character changed", email: "a@x.com", password: "secret2"},
		{name: "one character dropped", email: "a@x.com", password: "secret"},
		{name: "single character", email: "a@x.com", password: "s"},
		{name: "unknown email", email: "nobody@x.com", password: "secret1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.auth.Signin(ctx, tt.email, tt.password)
			de := requireCode(t, err, apperrors.CodeInvalidCredentials)
			require.Equal(t, "Invalid email or password", de.Message)
			require.Equal(t, 401, de.HTTPStatus)
		})
	}
}

func TestSignin_BlockedUserForbidden(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultAuthConfig())

	user, _, err := f.auth.Signup(ctx, SignupInput{Name: "Ann", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = f.store.Users().SetBlocked(ctx, user.ID, true)
	require.NoError(t, err)

	_, _, err = f.auth.Signin(ctx, "a@x.com", "secret1")
	de := requireCode(t, err, apperrors.CodeForbidden)
	require.Equal(t, "Account is blocked", de.Message)
}

func TestAdminSignup(t *testing.T) {
	ctx := context.Background()
	in := SignupInput{Name: "Root", Email: "root@x.com", Password: "secret1"}

	t.Run("creates admin", func(t *testing.T) {
		f := newFixture(t, defaultAuthConfig())
		user, token, err := f.auth.AdminSignup(ctx, in, "")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, user.Role)
		identity, err := f.tokens.Verify(token.Token)
		require.NoError(t, err)
		require.True(t, identity.IsAdmin())
	})

	t.Run("disabled", func(t *testing.T) {
		f := newFixture(t, config.AuthConfig{AdminSignupEnabled: false})
		_, _, err := f.auth.AdminSignup(ctx, in, "")
		requireCode(t, err, apperrors.CodeForbidden)
	})

	t.Run("invite code", func(t *testing.T) {
		f := newFixture(t, config.AuthConfig{AdminSignupEnabled: true, AdminInviteCode: "let-me-in"})
		_, _, err := f.auth.AdminSignup(ctx, in, "wrong")
		requireCode(t, err, apperrors.CodeForbidden)
		_, _, err = f.auth.AdminSignup(ctx, in, "")
		requireCode(t, err, apperrors.CodeForbidden)

		user, _, err := f.auth.AdminSignup(ctx, in, "let-me-in")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, user.Role)
	})
}

func TestRegister_RejectsLongPasswordAndBadRole(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultAuthConfig())

	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	_, err := f.auth.Register(ctx, SignupInput{Name: "Ann", Email: "a@x.com", Password: string(long)}, domain.RoleUser, ViaCLI)
	requireCode(t, err, apperrors.CodeValidation)

	_, err = f.auth.Register(ctx, SignupInput{Name: "Ann", Email: "a@x.com", Password: "secret1"}, domain.Role("owner"), ViaCLI)
	requireCode(t, err, apperrors.CodeValidation)
}
