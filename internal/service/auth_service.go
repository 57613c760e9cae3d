package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/jobboard-admin/internal/auth"
	"github.com/spec-kit/jobboard-admin/internal/config"
	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/events"
	"github.com/spec-kit/jobboard-admin/internal/repository"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

// Registration channels reported on user.registered events.
const (
	ViaSignup      = "signup"
	ViaAdminSignup = "admin_signup"
	ViaAdminCreate = "admin_create"
	ViaCLI         = "cli"
)

// SignupInput carries already-validated registration fields.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users              repository.UserRepository
	hasher             *auth.PasswordHasher
	tokens             *auth.TokenManager
	dispatcher         events.Dispatcher
	logger             *zap.Logger
	adminSignupEnabled bool
	adminInviteCode    string
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	Users      repository.UserRepository
	Hasher     *auth.PasswordHasher
	Tokens     *auth.TokenManager
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	hasher := deps.Hasher
	if hasher == nil {
		hasher = auth.NewPasswordHasher(cfg.BcryptCost)
	}
	return &AuthService{
		users:              deps.Users,
		hasher:             hasher,
		tokens:             deps.Tokens,
		dispatcher:         deps.Dispatcher,
		logger:             logger,
		adminSignupEnabled: cfg.AdminSignupEnabled,
		adminInviteCode:    cfg.AdminInviteCode,
	}
}

// Signup registers a regular user and signs them in.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*domain.User, domain.AuthToken, error) {
	return s.signupWithRole(ctx, in, domain.RoleUser, ViaSignup)
}

// AdminSignup registers an administrator. inviteCode is compared against the
// configured invite code when one is set.
func (s *AuthService) AdminSignup(ctx context.Context, in SignupInput, inviteCode string) (*domain.User, domain.AuthToken, error) {
	if !s.adminSignupEnabled {
		return nil, domain.AuthToken{}, apperrors.NewForbidden("Admin signup is disabled")
	}
	if s.adminInviteCode != "" &&
		subtle.ConstantTimeCompare([]byte(inviteCode), []byte(s.adminInviteCode)) != 1 {
		return nil, domain.AuthToken{}, apperrors.NewForbidden("Invalid admin invite code")
	}
	return s.signupWithRole(ctx, in, domain.RoleAdmin, ViaAdminSignup)
}

// Signin verifies credentials. Unknown email and wrong password produce the same error.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*domain.User, domain.AuthToken, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.AuthToken{}, apperrors.NewInvalidCredentials()
		}
		return nil, domain.AuthToken{}, apperrors.NewInternalError(err)
	}
	if user.Blocked {
		return nil, domain.AuthToken{}, apperrors.NewForbidden("Account is blocked")
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.AuthToken{}, apperrors.NewInvalidCredentials()
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, domain.AuthToken{}, apperrors.NewInternalError(err)
	}
	return user, token, nil
}

// Register creates a user with an explicit role without issuing a token.
// It backs admin user creation and the bootstrap CLI.
func (s *AuthService) Register(ctx context.Context, in SignupInput, role domain.Role, via string) (*domain.User, error) {
	if !role.Valid() {
		return nil, apperrors.NewValidationError("", []apperrors.FieldError{{Path: "role", Message: "must be one of: user, admin"}})
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperrors.NewValidationError("", []apperrors.FieldError{{Path: "password", Message: "must be at most 72 bytes"}})
		}
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("Email already registered", map[string]any{"email": user.Email})
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.NewEvent(events.EventUserRegistered, user.ID, "", events.UserRegisteredPayload{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Via:   via,
	}))
	return user, nil
}

func (s *AuthService) signupWithRole(ctx context.Context, in SignupInput, role domain.Role, via string) (*domain.User, domain.AuthToken, error) {
	user, err := s.Register(ctx, in, role, via)
	if err != nil {
		return nil, domain.AuthToken{}, err
	}
	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, domain.AuthToken{}, apperrors.NewInternalError(err)
	}
	return user, token, nil
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
