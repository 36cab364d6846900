package repositories

import (
	"context"

	"github.com/ghuser/storefront/services/user/domain/models"
)

// UserRepository is the persistence interface for the User aggregate.
// Lookups of unknown ids return domain.ErrUserNotFound.
type UserRepository interface {
	// List returns every user in creation order.
	List(ctx context.Context) ([]models.User, error)

	// ListByRole returns the users whose role equals role, in creation order.
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)

	GetByID(ctx context.Context, id string) (models.User, error)

	// Create assigns the next id and stores the user. It returns
	// domain.ErrEmailAlreadyExists when the email is taken; the check and
	// the insert are atomic.
	Create(ctx context.Context, draft models.UserDraft) (models.User, error)

	// Update overlays patch on the stored user. Email uniqueness is not re-checked.
	Update(ctx context.Context, id string, patch models.UserPatch) (models.User, error)

	Delete(ctx context.Context, id string) error
}
