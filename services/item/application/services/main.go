package services

import (
	"github.com/ghuser/storefront/pkg/app"
	"github.com/ghuser/storefront/services/item/domain/repositories"
	"github.com/ghuser/storefront/services/item/infrastructure/persistence/memory"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services with a fresh in-memory repository.
func New(a *app.Application) *Services {
	return NewWithRepository(a, memory.NewItemRepository(a.Clock()))
}

// NewWithRepository wires the services around an existing repository.
func NewWithRepository(a *app.Application, repo repositories.ItemRepository) *Services {
	var bus Publisher
	if a.EventBus != nil {
		bus = a.EventBus
	}
	return &Services{
		Item: NewItemService(repo, bus, a.Logger, a.Clock()),
	}
}
