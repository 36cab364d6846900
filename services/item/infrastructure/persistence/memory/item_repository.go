// Package memory implements the item repository on top of a process-local
// memstore. Contents are lost on restart.
package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/storefront/pkg/memstore"
	itemdomain "github.com/ghuser/storefront/services/item/domain"
	"github.com/ghuser/storefront/services/item/domain/models"
	"github.com/ghuser/storefront/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/storefront/services/item/domain/services"
)

var _ repositories.ItemRepository = (*ItemRepository)(nil)

// ItemRepository implements repositories.ItemRepository in memory.
type ItemRepository struct {
	store *memstore.Store[models.Item]
	now   func() time.Time
}

// NewItemRepository returns an empty repository stamping records with now.
// A nil now uses time.Now.
func NewItemRepository(now func() time.Time) *ItemRepository {
	if now == nil {
		now = time.Now
	}
	return &ItemRepository{store: memstore.New[models.Item](), now: now}
}

// List returns every item in creation order.
func (r *ItemRepository) List(_ context.Context) ([]models.Item, error) {
	return r.store.List(), nil
}

// GetByID returns the item stored under id or ErrItemNotFound.
func (r *ItemRepository) GetByID(_ context.Context, id string) (models.Item, error) {
	item, ok := r.store.Get(id)
	if !ok {
		return models.Item{}, fmt.Errorf("get item %s: %w", id, itemdomain.ErrItemNotFound)
	}
	return item, nil
}

// Create stores a new item under the next id.
func (r *ItemRepository) Create(_ context.Context, draft models.ItemDraft) (models.Item, error) {
	now := r.now()
	return r.store.Insert(func(id string) models.Item {
		return models.NewItem(id, draft, now)
	})
}

// Update overlays patch onto the stored item. The read-modify-write runs
// under the store lock, so concurrent patches never lose fields.
func (r *ItemRepository) Update(_ context.Context, id string, patch models.ItemPatch) (models.Item, error) {
	now := r.now()
	item, ok := r.store.Update(id, func(cur models.Item) models.Item {
		return domainsvcs.ApplyItemPatch(cur, patch, now)
	})
	if !ok {
		return models.Item{}, fmt.Errorf("update item %s: %w", id, itemdomain.ErrItemNotFound)
	}
	return item, nil
}

// Delete removes the item stored under id or returns ErrItemNotFound.
func (r *ItemRepository) Delete(_ context.Context, id string) error {
	if !r.store.Delete(id) {
		return fmt.Errorf("delete item %s: %w", id, itemdomain.ErrItemNotFound)
	}
	return nil
}

// Reset empties the repository and restarts ids at "1". Test isolation only.
func (r *ItemRepository) Reset() {
	r.store.Reset()
}

// Len returns the number of stored items.
func (r *ItemRepository) Len() int {
	return r.store.Len()
}
