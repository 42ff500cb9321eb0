package seeders

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalog/app/models"
	"github.com/shashiranjanraj/catalog/app/repositories"
)

func init() {
	Register("products", SeedProducts)
}

var demoProducts = []models.ProductFields{
	{Name: "Widget", Description: "A small widget", Price: 9.99, Category: "Tools", ImgURL: "https://example.com/widget.png", Stock: 3, Brand: "Acme"},
	{Name: "Gadget", Description: "A handy gadget", Price: 24.5, Category: "Electronics", ImgURL: "https://example.com/gadget.png", Stock: 12, Brand: "Globex"},
	{Name: "Gizmo", Description: "Does a bit of everything", Price: 0, Category: "Misc", Stock: 0, Brand: "Initech"},
}

// SeedProducts inserts the demo products into an empty catalog. A catalog
// that already has rows is left alone.
func SeedProducts(ctx context.Context, db *gorm.DB) error {
	repo := repositories.NewProductRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		return err
	}

	existing, err := repo.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, f := range demoProducts {
		if _, err := repo.Insert(ctx, f); err != nil {
			return err
		}
	}
	return nil
}
