package services

import (
	"context"

	"github.com/shashiranjanraj/catalog/app/models"
	"github.com/shashiranjanraj/catalog/pkg/logger"
)

// ProductStore is the storage accessor the service depends on.
// *repositories.ProductRepository satisfies it.
type ProductStore interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (models.Product, error)
	Insert(ctx context.Context, f models.ProductFields) (models.Product, error)
	Replace(ctx context.Context, id uint, f models.ProductFields) (models.Product, error)
	Remove(ctx context.Context, id uint) error
}

type ProductService struct {
	store ProductStore
}

func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.store.ListAll(ctx)
}

func (s *ProductService) Create(ctx context.Context, f models.ProductFields) (models.Product, error) {
	p, err := s.store.Insert(ctx, f)
	if err != nil {
		return models.Product{}, err
	}
	logger.WithCtx(ctx).Info("product created", "id", p.ID, "name", p.Name)
	return p, nil
}

// Update fails with the store's not-found error before writing anything
// when id does not exist.
func (s *ProductService) Update(ctx context.Context, id uint, f models.ProductFields) (models.Product, error) {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return models.Product{}, err
	}

	p, err := s.store.Replace(ctx, id, f)
	if err != nil {
		return models.Product{}, err
	}
	logger.WithCtx(ctx).Info("product updated", "id", id)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.store.Remove(ctx, id); err != nil {
		return err
	}
	logger.WithCtx(ctx).Info("product deleted", "id", id)
	return nil
}
