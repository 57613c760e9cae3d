package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/jobboard-admin/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user.registered"
	EventUserBlocked    EventType = "user.blocked"
	EventUserUnblocked  EventType = "user.unblocked"
	EventUserDeleted    EventType = "user.deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	UserID    string    `json:"userId"`
	ActorID   string    `json:"actorId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// NewEvent stamps a fresh event for the given user. actorID is empty for self-service actions.
func NewEvent(eventType EventType, userID, actorID string, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	// Via is "signup", "admin_signup", "admin_create" or "cli".
	Via string `json:"via"`
}

// UserStatusPayload payload for blocked, unblocked and deleted events.
type UserStatusPayload struct {
	Email string `json:"email"`
}
