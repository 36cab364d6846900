package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ghuser/storefront/pkg/apperr"
	"github.com/ghuser/storefront/pkg/logger"
	userdomain "github.com/ghuser/storefront/services/user/domain"
	"github.com/ghuser/storefront/services/user/domain/events"
	"github.com/ghuser/storefront/services/user/domain/models"
	"github.com/ghuser/storefront/services/user/domain/repositories"
)

const emailAlreadyExistsMessage = "Email already exists"

// Publisher is the slice of the EventBus the service needs.
type Publisher interface {
	PublishJSON(ctx context.Context, topic string, payload any) error
}

// UserService orchestrates the User lifecycle and publishes a domain event
// after every successful mutation.
type UserService struct {
	repo repositories.UserRepository
	bus  Publisher
	log  logger.Logger
	now  func() time.Time
}

// NewUserService returns a UserService. bus may be nil to disable events.
func NewUserService(repo repositories.UserRepository, bus Publisher, log logger.Logger, now func() time.Time) *UserService {
	if now == nil {
		now = time.Now
	}
	return &UserService{repo: repo, bus: bus, log: log, now: now}
}

// List returns all users, or only those holding role when role is non-nil.
func (s *UserService) List(ctx context.Context, role *models.Role) ([]models.User, error) {
	var (
		users []models.User
		err   error
	)
	if role != nil {
		users, err = s.repo.ListByRole(ctx, *role)
	} else {
		users, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns the user or a 404 "User <id> not found".
func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.User{}, translate(id, "get user", err)
	}
	return user, nil
}

// Create stores a validated draft. A taken email is a 400 "Email already exists".
func (s *UserService) Create(ctx context.Context, draft models.UserDraft) (models.User, error) {
	user, err := s.repo.Create(ctx, draft)
	if err != nil {
		if errors.Is(err, userdomain.ErrEmailAlreadyExists) {
			return models.User{}, apperr.Validation(emailAlreadyExistsMessage).Wrap(err)
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	s.publish(ctx, events.TopicUserCreated, events.NewUserCreated(user, s.now()))
	return user, nil
}

// Update applies a validated patch.
func (s *UserService) Update(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return models.User{}, translate(id, "update user", err)
	}
	s.publish(ctx, events.TopicUserUpdated, events.NewUserUpdated(id, patch, s.now()))
	return user, nil
}

// Delete removes the user.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(id, "delete user", err)
	}
	s.publish(ctx, events.TopicUserDeleted, events.NewUserDeleted(id, s.now()))
	return nil
}

func (s *UserService) publish(ctx context.Context, topic string, payload any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.PublishJSON(ctx, topic, payload); err != nil {
		s.log.WarnContext(ctx, "publish user event failed", "topic", topic, "error", err)
	}
}

func translate(id, op string, err error) error {
	if errors.Is(err, userdomain.ErrUserNotFound) {
		return apperr.NotFoundf("User %s not found", id).Wrap(err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
