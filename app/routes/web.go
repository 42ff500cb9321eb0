// Package routes registers every catalog endpoint on the router.
package routes

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalog/app/controllers"
	"github.com/shashiranjanraj/catalog/app/repositories"
	"github.com/shashiranjanraj/catalog/app/services"
	"github.com/shashiranjanraj/catalog/app/views"
	"github.com/shashiranjanraj/catalog/pkg/ctx"
	"github.com/shashiranjanraj/catalog/pkg/database"
	"github.com/shashiranjanraj/catalog/pkg/router"
)

// Register mounts the page, the JSON API, the static script and /healthz.
func Register(r *router.Router, db *gorm.DB) {
	service := services.NewProductService(repositories.NewProductRepository(db))

	products := controllers.NewProductController(service)
	pages := controllers.NewPageController(service)
	health := controllers.NewHealthController(func(c context.Context) error {
		return database.Ping(c, db)
	})

	r.Get("/", "home", ctx.Wrap(pages.Index))
	r.Get("/healthz", "health", ctx.Wrap(health.Check))
	r.Handle("/static/*", "static", views.Static())

	api := r.Group("/api")
	api.Get("/products", "products.index", ctx.Wrap(products.List))
	api.Post("/products", "products.store", ctx.Wrap(products.Store))
	api.Put("/products/{id}", "products.update", ctx.Wrap(products.Update))
	api.Delete("/products/{id}", "products.destroy", ctx.Wrap(products.Destroy))
}
