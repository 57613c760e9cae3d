package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/jobboard-admin/internal/auth"
	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/events"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

func TestUserService_CreateListGet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultAuthConfig())

	admin, err := f.users.Create(ctx, CreateUserInput{
		SignupInput: SignupInput{Name: "Boss", Email: "boss@x.com", Password: "secret1"},
		Role:        domain.RoleAdmin,
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, admin.Role)

	plain, err := f.users.Create(ctx, CreateUserInput{SignupInput: SignupInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"}})
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, plain.Role)

	_, err = f.users.Create(ctx, CreateUserInput{SignupInput: SignupInput{Name: "Dup", Email: "ann@x.com", Password: "secret1"}})
	requireCode(t, err, apperrors.CodeConflict)

	all, err := f.users.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	admins, err := f.users.List(ctx, "admin")
	require.NoError(t, err)
	require.Len(t, admins, 1)

	got, err := f.users.Get(ctx, plain.ID)
	require.NoError(t, err)
	require.Equal(t, "ann@x.com", got.Email)

	_, err = f.users.Get(ctx, "missing")
	requireCode(t, err, apperrors.CodeNotFound)
}

func TestUserService_BlockRevokesAndGuardsSelf(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultAuthConfig())

	revocations := auth.NewMemoryRevocationStore(time.Hour)
	f.dispatcher.Subscribe(events.EventUserBlocked, func(ctx context.Context, e events.Event) error {
		return revocations.Revoke(ctx, e.UserID, e.Timestamp)
	})

	admin, _, err := f.auth.AdminSignup(ctx, SignupInput{Name: "Boss", Email: "boss@x.com", Password: "secret1"}, "")
	require.NoError(t, err)
	victim, token, err := f.auth.Signup(ctx, SignupInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)
	actor := &domain.Identity{SubjectID: admin.ID, Role: domain.RoleAdmin}

	_, err = f.users.SetBlocked(ctx, actor, admin.ID, true)
	de := requireCode(t, err, apperrors.CodeValidation)
	require.Equal(t, 400, de.HTTPStatus)

	blocked, err := f.users.SetBlocked(ctx, actor, victim.ID, true)
	require.NoError(t, err)
	require.True(t, blocked.Blocked)

	identity, err := f.tokens.Verify(token.Token)
	require.NoError(t, err)
	revoked, err := revocations.IsRevoked(ctx, victim.ID, identity.IssuedAt)
	require.NoError(t, err)
	require.True(t, revoked)

	_, _, err = f.auth.Signin(ctx, "ann@x.com", "secret1")
	requireCode(t, err, apperrors.CodeForbidden)

	unblocked, err := f.users.SetBlocked(ctx, actor, victim.ID, false)
	require.NoError(t, err)
	require.False(t, unblocked.Blocked)

	_, err = f.users.SetBlocked(ctx, actor, "missing", true)
	requireCode(t, err, apperrors.CodeNotFound)
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultAuthConfig())

	var deleted []string
	f.dispatcher.Subscribe(events.EventUserDeleted, func(_ context.Context, e events.Event) error {
		deleted = append(deleted, e.UserID)
		return nil
	})

	admin, _, err := f.auth.AdminSignup(ctx, SignupInput{Name: "Boss", Email: "boss@x.com", Password: "secret1"}, "")
	require.NoError(t, err)
	victim, _, err := f.auth.Signup(ctx, SignupInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)
	actor := &domain.Identity{SubjectID: admin.ID, Role: domain.RoleAdmin}

	requireCode(t, f.users.Delete(ctx, actor, admin.ID), apperrors.CodeValidation)
	require.NoError(t, f.users.Delete(ctx, actor, victim.ID))
	requireCode(t, f.users.Delete(ctx, actor, victim.ID), apperrors.CodeNotFound)
	require.Equal(t, []string{victim.ID}, deleted)
}
