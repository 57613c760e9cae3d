package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/events"
	"github.com/spec-kit/jobboard-admin/internal/repository"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

// CreateUserInput is an admin-initiated account creation.
type CreateUserInput struct {
	SignupInput
	Role domain.Role
}

// UserService exposes administrative user management.
type UserService struct {
	users      repository.UserRepository
	auth       *AuthService
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewUserService builds the service. Account creation is delegated to authService.
func NewUserService(users repository.UserRepository, authService *AuthService, dispatcher events.Dispatcher, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{users: users, auth: authService, dispatcher: dispatcher, logger: logger}
}

// List returns users newest first, optionally filtered by name, email or role.
func (s *UserService) List(ctx context.Context, query string) ([]domain.User, error) {
	users, err := s.users.List(ctx, repository.UserFilter{Query: strings.TrimSpace(query)})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return users, nil
}

// Get loads a single user.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "User")
	}
	return user, nil
}

// Create adds an account with the requested role (user when empty).
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	return s.auth.Register(ctx, in.SignupInput, role, ViaAdminCreate)
}

// SetBlocked blocks or unblocks a user. Outstanding tokens of a blocked user are revoked
// by the session worker listening for user.blocked.
func (s *UserService) SetBlocked(ctx context.Context, actor *domain.Identity, id string, blocked bool) (*domain.User, error) {
	if blocked && actor != nil && actor.SubjectID == id {
		return nil, apperrors.NewValidationError("You cannot block your own account", nil)
	}
	user, err := s.users.SetBlocked(ctx, id, blocked)
	if err != nil {
		return nil, mapRepoError(err, "User")
	}

	eventType := events.EventUserUnblocked
	if blocked {
		eventType = events.EventUserBlocked
	}
	s.publish(ctx, events.NewEvent(eventType, user.ID, actorID(actor), events.UserStatusPayload{Email: user.Email}))
	return user, nil
}

// Delete removes a user and revokes their sessions.
func (s *UserService) Delete(ctx context.Context, actor *domain.Identity, id string) error {
	if actor != nil && actor.SubjectID == id {
		return apperrors.NewValidationError("You cannot delete your own account", nil)
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err, "User")
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return mapRepoError(err, "User")
	}
	s.publish(ctx, events.NewEvent(events.EventUserDeleted, id, actorID(actor), events.UserStatusPayload{Email: user.Email}))
	return nil
}

func (s *UserService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed",
			zap.String("event_type", string(event.Type)),
			zap.String("user_id", event.UserID),
			zap.Error(err))
	}
}

func actorID(actor *domain.Identity) string {
	if actor == nil {
		return ""
	}
	return actor.SubjectID
}
