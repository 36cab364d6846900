package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ghuser/storefront/pkg/apperr"
	"github.com/ghuser/storefront/pkg/logger"
	itemdomain "github.com/ghuser/storefront/services/item/domain"
	"github.com/ghuser/storefront/services/item/domain/events"
	"github.com/ghuser/storefront/services/item/domain/models"
	"github.com/ghuser/storefront/services/item/domain/repositories"
)

// Publisher is the slice of the EventBus the service needs.
type Publisher interface {
	PublishJSON(ctx context.Context, topic string, payload any) error
}

// ItemService orchestrates the Item lifecycle and publishes a domain event
// after every successful mutation. A failed publish is logged and never
// fails the request.
type ItemService struct {
	repo repositories.ItemRepository
	bus  Publisher
	log  logger.Logger
	now  func() time.Time
}

// NewItemService returns an ItemService. bus may be nil to disable events.
func NewItemService(repo repositories.ItemRepository, bus Publisher, log logger.Logger, now func() time.Time) *ItemService {
	if now == nil {
		now = time.Now
	}
	return &ItemService{repo: repo, bus: bus, log: log, now: now}
}

// List returns every item in creation order.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Get returns the item or a 404 "Item <id> not found".
func (s *ItemService) Get(ctx context.Context, id string) (models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Item{}, translate(id, "get item", err)
	}
	return item, nil
}

// Create stores a validated draft and publishes item.created.
func (s *ItemService) Create(ctx context.Context, draft models.ItemDraft) (models.Item, error) {
	item, err := s.repo.Create(ctx, draft)
	if err != nil {
		return models.Item{}, fmt.Errorf("create item: %w", err)
	}
	s.publish(ctx, events.TopicItemCreated, events.NewItemCreated(item, s.now()))
	return item, nil
}

// Update applies a validated patch and publishes item.updated.
func (s *ItemService) Update(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error) {
	item, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return models.Item{}, translate(id, "update item", err)
	}
	s.publish(ctx, events.TopicItemUpdated, events.NewItemUpdated(id, patch, s.now()))
	return item, nil
}

// Delete removes the item and publishes item.deleted.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(id, "delete item", err)
	}
	s.publish(ctx, events.TopicItemDeleted, events.NewItemDeleted(id, s.now()))
	return nil
}

func (s *ItemService) publish(ctx context.Context, topic string, payload any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.PublishJSON(ctx, topic, payload); err != nil {
		s.log.WarnContext(ctx, "publish item event failed", "topic", topic, "error", err)
	}
}

func translate(id, op string, err error) error {
	if errors.Is(err, itemdomain.ErrItemNotFound) {
		return apperr.NotFoundf("Item %s not found", id).Wrap(err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
