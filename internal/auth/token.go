package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/jobboard-admin/internal/domain"
)

// ErrInvalidToken covers bad signatures, malformed payloads and expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a new manager. The secret must be non-empty.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &TokenManager{secret: []byte(trimmed), ttl: ttl, now: time.Now}, nil
}

// Claims describes JWT payload. The user id travels in the registered "sub" claim.
// IssuedAtMillis repeats "iat" at millisecond precision for revocation checks.
type Claims struct {
	Email          string      `json:"email"`
	Role           domain.Role `json:"role"`
	IssuedAtMillis int64       `json:"iat_ms,omitempty"`
	jwt.RegisteredClaims
}

// TTL returns the lifetime of issued tokens.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Issue builds and signs a JWT for the subject.
func (tm *TokenManager) Issue(subjectID, email string, role domain.Role) (domain.AuthToken, error) {
	if subjectID == "" {
		return domain.AuthToken{}, errors.New("subject id required")
	}
	if !role.Valid() {
		return domain.AuthToken{}, fmt.Errorf("unknown role %q", role)
	}

	now := tm.now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Email:          email,
		Role:           role,
		IssuedAtMillis: now.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return domain.AuthToken{}, err
	}
	return domain.AuthToken{Token: tokenString, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Verify validates signature and expiry and returns the identity the token asserts.
func (tm *TokenManager) Verify(tokenStr string) (*domain.Identity, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)

	parsed, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	identity := &domain.Identity{
		SubjectID: claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	switch {
	case claims.IssuedAtMillis > 0:
		identity.IssuedAt = time.UnixMilli(claims.IssuedAtMillis)
	case claims.IssuedAt != nil:
		identity.IssuedAt = claims.IssuedAt.Time
	}
	return identity, nil
}
