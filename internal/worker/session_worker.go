package worker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/jobboard-admin/internal/auth"
	"github.com/spec-kit/jobboard-admin/internal/events"
	"github.com/spec-kit/jobboard-admin/internal/service"
)

// StartSessionWorker subscribes the event handlers that react to user lifecycle changes:
// revoking outstanding tokens of blocked or deleted users and emitting notifications.
func StartSessionWorker(dispatcher events.Dispatcher, revocations auth.RevocationStore, notifications *service.NotificationService, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	if revocations != nil {
		revoke := revokeHandler(revocations, logger)
		dispatcher.Subscribe(events.EventUserBlocked, revoke)
		dispatcher.Subscribe(events.EventUserDeleted, revoke)
	}
	if notifications != nil {
		notifications.RegisterHandlers()
	}
}

func revokeHandler(revocations auth.RevocationStore, logger *zap.Logger) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		if event.UserID == "" {
			return errors.New("event without user id")
		}
		at := event.Timestamp
		if at.IsZero() {
			at = time.Now()
		}
		if err := revocations.Revoke(ctx, event.UserID, at); err != nil {
			return err
		}
		logger.Info("sessions revoked",
			zap.String("user_id", event.UserID),
			zap.String("reason", string(event.Type)))
		return nil
	}
}
