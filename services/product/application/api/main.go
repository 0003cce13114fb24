package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/pantry/pkg/app"
	"github.com/ghuser/pantry/services/product/application/handlers"
	appsvcs "github.com/ghuser/pantry/services/product/application/services"
)

// ProductRoutes registers product and stash item endpoints on the provided chi router.
func ProductRoutes(r chi.Router, a *app.Application) {
	Routes(r, appsvcs.New(a))
}

// Routes registers the endpoints backed by svcs.
func Routes(r chi.Router, svcs *appsvcs.Services) {
	products := handlers.NewProductHandler(svcs)
	stashItems := handlers.NewStashItemHandler(svcs)

	r.Route("/products", func(r chi.Router) {
		r.Post("/", products.Create)
		r.Get("/", products.List)
		r.Get("/expiring", products.Expiring)
		r.Get("/by_stash_item_id/{stashItemID}", products.ByStashItemID)

		r.Route("/{productID}", func(r chi.Router) {
			r.Get("/", products.Get)
			r.Put("/", products.Update)
			r.Delete("/", products.Delete)

			r.Route("/stash_items", func(r chi.Router) {
				r.Get("/", stashItems.List)
				r.Post("/", stashItems.Add)
				r.Put("/{stashItemID}", stashItems.Update)
				r.Delete("/{stashItemID}", stashItems.Remove)
			})
		})
	})
}
