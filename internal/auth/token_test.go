package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/jobboard-admin/internal/domain"
)

func newTestManager(t *testing.T, ttl time.Duration) (*TokenManager, *time.Time) {
	t.Helper()
	tm, err := NewTokenManager("super-secret", ttl)
	require.NoError(t, err)

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.now = func() time.Time { return clock }
	return tm, &clock
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	_, err := NewTokenManager("   ", time.Hour)
	require.Error(t, err)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	tm, _ := newTestManager(t, time.Hour)

	tests := []struct {
		id    string
		email string
		role  domain.Role
	}{
		{id: "0b7c7a52-4f7e-4c55-9f7a-3e3a0f1d9a10", email: "a@x.com", role: domain.RoleAdmin},
		{id: "u-1", email: "User.Mixed@Example.org", role: domain.RoleUser},
		{id: "42", email: "", role: domain.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			tok, err := tm.Issue(tt.id, tt.email, tt.role)
			require.NoError(t, err)
			require.NotEmpty(t, tok.Token)

			identity, err := tm.Verify(tok.Token)
			require.NoError(t, err)
			require.Equal(t, tt.id, identity.SubjectID)
			require.Equal(t, tt.email, identity.Email)
			require.Equal(t, tt.role, identity.Role)
			require.True(t, identity.ExpiresAt.Equal(tok.ExpiresAt))
		})
	}
}

func TestVerify_IssuedAtMillisecondPrecision(t *testing.T) {
	tm, clock := newTestManager(t, time.Hour)
	*clock = clock.Add(750 * time.Millisecond)

	tok, err := tm.Issue("u-1", "a@x.com", domain.RoleUser)
	require.NoError(t, err)

	identity, err := tm.Verify(tok.Token)
	require.NoError(t, err)
	require.True(t, identity.IssuedAt.Equal(*clock), "got %s", identity.IssuedAt)
}

func TestVerify_IssuedAtFallsBackToIat(t *testing.T) {
	tm, clock := newTestManager(t, time.Hour)

	claims := &Claims{
		Role: domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-1",
			IssuedAt:  jwt.NewNumericDate(*clock),
			ExpiresAt: jwt.NewNumericDate(clock.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("super-secret"))
	require.NoError(t, err)

	identity, err := tm.Verify(signed)
	require.NoError(t, err)
	require.True(t, identity.IssuedAt.Equal(*clock))
}

func TestIssue_RejectsUnknownRole(t *testing.T) {
	tm, _ := newTestManager(t, time.Hour)

	_, err := tm.Issue("u-1", "a@x.com", domain.Role("superuser"))
	require.Error(t, err)
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	tm, clock := newTestManager(t, time.Hour)
	issuedAt := *clock

	tok, err := tm.Issue("u-1", "a@x.com", domain.RoleUser)
	require.NoError(t, err)
	require.True(t, tok.ExpiresAt.Equal(issuedAt.Add(time.Hour)))

	*clock = issuedAt.Add(time.Hour - time.Second)
	_, err = tm.Verify(tok.Token)
	require.NoError(t, err)

	*clock = issuedAt.Add(time.Hour)
	_, err = tm.Verify(tok.Token)
	require.ErrorIs(t, err, ErrInvalidToken)

	*clock = issuedAt.Add(2 * time.Hour)
	_, err = tm.Verify(tok.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_TamperedSignature(t *testing.T) {
	tm, _ := newTestManager(t, time.Hour)

	tok, err := tm.Issue("u-1", "a@x.com", domain.RoleAdmin)
	require.NoError(t, err)

	parts := strings.Split(tok.Token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tm.Verify(tampered)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_TamperedPayload(t *testing.T) {
	tm, _ := newTestManager(t, time.Hour)

	userTok, err := tm.Issue("u-1", "a@x.com", domain.RoleUser)
	require.NoError(t, err)
	adminTok, err := tm.Issue("u-1", "a@x.com", domain.RoleAdmin)
	require.NoError(t, err)

	user := strings.Split(userTok.Token, ".")
	admin := strings.Split(adminTok.Token, ".")

	// admin payload with the user token's signature
	forged := user[0] + "." + admin[1] + "." + user[2]
	_, err = tm.Verify(forged)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	tm, _ := newTestManager(t, time.Hour)
	other, err := NewTokenManager("other-secret", time.Hour)
	require.NoError(t, err)
	other.now = tm.now

	tok, err := other.Issue("u-1", "a@x.com", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = tm.Verify(tok.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	tm, _ := newTestManager(t, time.Hour)

	for _, raw := range []string{"", "not.a.jwt", "abc", "a.b.c.d"} {
		_, err := tm.Verify(raw)
		require.True(t, errors.Is(err, ErrInvalidToken), "token %q", raw)
	}
}
