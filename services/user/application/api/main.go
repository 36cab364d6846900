package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/storefront/pkg/app"
	"github.com/ghuser/storefront/services/user/application/handlers"
	appsvcs "github.com/ghuser/storefront/services/user/application/services"
)

// UserRoutes registers user endpoints on the provided chi router.
func UserRoutes(r chi.Router, a *app.Application) {
	MountUserRoutes(r, a, appsvcs.New(a))
}

// MountUserRoutes registers user endpoints backed by svcs.
func MountUserRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", handlers.NewListUsersHandler(svcs, a.Logger).Execute)
		r.Post("/", handlers.NewPostUserHandler(svcs, a.Logger).Execute)
		r.Get("/{id}", handlers.NewGetUserHandler(svcs, a.Logger).Execute)
		r.Patch("/{id}", handlers.NewPatchUserHandler(svcs, a.Logger).Execute)
		r.Delete("/{id}", handlers.NewDeleteUserHandler(svcs, a.Logger).Execute)
	})
}
