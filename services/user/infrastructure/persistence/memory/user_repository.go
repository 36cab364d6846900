// Package memory implements the user repository on top of a process-local
// memstore. Contents are lost on restart.
package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/storefront/pkg/memstore"
	userdomain "github.com/ghuser/storefront/services/user/domain"
	"github.com/ghuser/storefront/services/user/domain/models"
	"github.com/ghuser/storefront/services/user/domain/repositories"
	domainsvcs "github.com/ghuser/storefront/services/user/domain/services"
)

var _ repositories.UserRepository = (*UserRepository)(nil)

// UserRepository implements repositories.UserRepository in memory.
type UserRepository struct {
	store *memstore.Store[models.User]
	now   func() time.Time
}

// NewUserRepository returns an empty repository. A nil now uses time.Now.
func NewUserRepository(now func() time.Time) *UserRepository {
	if now == nil {
		now = time.Now
	}
	return &UserRepository{store: memstore.New[models.User](), now: now}
}

func (r *UserRepository) List(_ context.Context) ([]models.User, error) {
	return r.store.List(), nil
}

func (r *UserRepository) ListByRole(_ context.Context, role models.Role) ([]models.User, error) {
	return r.store.Find(func(u models.User) bool { return u.Role == role }), nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (models.User, error) {
	user, ok := r.store.Get(id)
	if !ok {
		return models.User{}, fmt.Errorf("get user %s: %w", id, userdomain.ErrUserNotFound)
	}
	return user, nil
}

// Create stores a new user unless the email (exact, case-sensitive match)
// is already taken.
func (r *UserRepository) Create(_ context.Context, draft models.UserDraft) (models.User, error) {
	now := r.now()
	user, err := r.store.Insert(
		func(id string) models.User { return models.NewUser(id, draft, now) },
		func(existing models.User) error {
			if existing.Email == draft.Email {
				return userdomain.ErrEmailAlreadyExists
			}
			return nil
		},
	)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Update(_ context.Context, id string, patch models.UserPatch) (models.User, error) {
	user, ok := r.store.Update(id, func(cur models.User) models.User {
		return domainsvcs.ApplyUserPatch(cur, patch)
	})
	if !ok {
		return models.User{}, fmt.Errorf("update user %s: %w", id, userdomain.ErrUserNotFound)
	}
	return user, nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	if !r.store.Delete(id) {
		return fmt.Errorf("delete user %s: %w", id, userdomain.ErrUserNotFound)
	}
	return nil
}

// Reset empties the repository and restarts ids at "1". Test isolation only.
func (r *UserRepository) Reset() {
	r.store.Reset()
}

// Len returns the number of stored users.
func (r *UserRepository) Len() int {
	return r.store.Len()
}
