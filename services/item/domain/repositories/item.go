package repositories

import (
	"context"

	"github.com/ghuser/storefront/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Lookups of unknown ids return domain.ErrItemNotFound.
type ItemRepository interface {
	// List returns every item in creation order.
	List(ctx context.Context) ([]models.Item, error)
	GetByID(ctx context.Context, id string) (models.Item, error)

	// Create assigns the next id and stores the item.
	Create(ctx context.Context, draft models.ItemDraft) (models.Item, error)

	// Update overlays patch on the stored item and refreshes UpdatedAt.
	Update(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error)

	Delete(ctx context.Context, id string) error
}
