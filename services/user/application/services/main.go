package services

import (
	"github.com/ghuser/storefront/pkg/app"
	"github.com/ghuser/storefront/services/user/domain/repositories"
	"github.com/ghuser/storefront/services/user/infrastructure/persistence/memory"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	User *UserService
}

// New wires all user application services with a fresh in-memory repository.
func New(a *app.Application) *Services {
	return NewWithRepository(a, memory.NewUserRepository(a.Clock()))
}

// NewWithRepository wires the services around an existing repository.
func NewWithRepository(a *app.Application, repo repositories.UserRepository) *Services {
	var bus Publisher
	if a.EventBus != nil {
		bus = a.EventBus
	}
	return &Services{
		User: NewUserService(repo, bus, a.Logger, a.Clock()),
	}
}
