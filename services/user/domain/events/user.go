package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/storefront/services/user/domain/models"
)

// Watermill topics published by the user service.
const (
	TopicUserCreated = "user.created"
	TopicUserUpdated = "user.updated"
	TopicUserDeleted = "user.deleted"
)

// UserEventVersion is the schema version stamped on every user event.
const UserEventVersion = 1

// UserCreatedEvent is published after a new User is stored.
// The email is deliberately left out of the payload.
type UserCreatedEvent struct {
	EventID    uuid.UUID   `json:"event_id"`
	Version    int         `json:"version"`
	UserID     string      `json:"user_id"`
	Role       models.Role `json:"role"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// UserUpdatedEvent is published after a patch is applied.
type UserUpdatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	UserID     string    `json:"user_id"`
	Fields     []string  `json:"fields"`
	OccurredAt time.Time `json:"occurred_at"`
}

// UserDeletedEvent is published after a User is removed.
type UserDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewUserCreated builds the creation event for user.
func NewUserCreated(user models.User, at time.Time) UserCreatedEvent {
	return UserCreatedEvent{
		EventID:    uuid.New(),
		Version:    UserEventVersion,
		UserID:     user.ID,
		Role:       user.Role,
		OccurredAt: at.UTC(),
	}
}

// NewUserUpdated builds the update event listing which fields patch set.
func NewUserUpdated(id string, patch models.UserPatch, at time.Time) UserUpdatedEvent {
	fields := []string{}
	if patch.Email != nil {
		fields = append(fields, "email")
	}
	if patch.Name != nil {
		fields = append(fields, "name")
	}
	if patch.Role != nil {
		fields = append(fields, "role")
	}
	return UserUpdatedEvent{
		EventID:    uuid.New(),
		Version:    UserEventVersion,
		UserID:     id,
		Fields:     fields,
		OccurredAt: at.UTC(),
	}
}

// NewUserDeleted builds the deletion event for id.
func NewUserDeleted(id string, at time.Time) UserDeletedEvent {
	return UserDeletedEvent{
		EventID:    uuid.New(),
		Version:    UserEventVersion,
		UserID:     id,
		OccurredAt: at.UTC(),
	}
}
