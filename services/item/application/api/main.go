package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemflow/pkg/app"
	"github.com/ghuser/itemflow/services/item/application/handlers"
	appsvcs "github.com/ghuser/itemflow/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
// The static /items/process route is registered alongside /items/{id};
// chi matches static segments before parameters.
func ItemRoutes(r chi.Router, a *app.Application) {
	svc := appsvcs.New(a).Item
	r.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.NewListItemsHandler(svc).Execute)
		r.Post("/", handlers.NewPostItemHandler(svc).Execute)
		r.Get("/process", handlers.NewProcessItemsHandler(svc).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svc).Execute)
		r.Put("/{id}", handlers.NewPutItemHandler(svc).Execute)
		r.Delete("/{id}", handlers.NewDeleteItemHandler(svc).Execute)
	})
}
