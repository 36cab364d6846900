package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/storefront/pkg/app"
	"github.com/ghuser/storefront/services/item/application/handlers"
	appsvcs "github.com/ghuser/storefront/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	MountItemRoutes(r, a, appsvcs.New(a))
}

// MountItemRoutes registers item endpoints backed by svcs.
func MountItemRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewListItemsHandler(svcs, a.Logger).Execute)
			r.Post("/", handlers.NewPostItemHandler(svcs, a.Logger).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs, a.Logger).Execute)
			r.Patch("/{id}", handlers.NewPatchItemHandler(svcs, a.Logger).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs, a.Logger).Execute)
		})
	})
}
