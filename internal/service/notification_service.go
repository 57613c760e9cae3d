package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/jobboard-admin/internal/config"
	"github.com/spec-kit/jobboard-admin/internal/events"
)

// NotificationService emits notifications for user lifecycle events.
// Delivery is stubbed: messages are logged, not sent.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventUserBlocked, n.handleStatusChange)
	n.dispatcher.Subscribe(events.EventUserUnblocked, n.handleStatusChange)
	n.dispatcher.Subscribe(events.EventUserDeleted, n.handleStatusChange)
}

func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.String("user_id", event.UserID), zap.Any("payload", event.Payload))
	if p, ok := event.Payload.(events.UserRegisteredPayload); ok {
		n.sendEmailNotificationStub(ctx, event, p.Email)
	}
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleStatusChange(ctx context.Context, event events.Event) error {
	n.logger.Info("UserStatusChanged",
		zap.String("user_id", event.UserID),
		zap.String("actor_id", event.ActorID),
		zap.String("event_type", string(event.Type)))
	if p, ok := event.Payload.(events.UserStatusPayload); ok && event.Type != events.EventUserDeleted {
		n.sendEmailNotificationStub(ctx, event, p.Email)
	}
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event, to string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" || to == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", to),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("user_id", event.UserID),
		zap.String("event_type", string(event.Type)))
}
