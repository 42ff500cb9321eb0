package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalog/app/models"
	"github.com/shashiranjanraj/catalog/pkg/orm"
)

// ErrNotFound is returned when no product has the requested id.
var ErrNotFound = errors.New("product not found")

// writableColumns lists every column Replace overwrites.
var writableColumns = []string{"name", "description", "price", "category", "imgUrl", "stock", "brand"}

// ProductRepository is the storage accessor for the product table.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Migrate creates the product table if it is missing.
func (r *ProductRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("product repository: migrate: %w", err)
	}
	return nil
}

func (r *ProductRepository) query(ctx context.Context) *orm.Query {
	return orm.New(r.db).WithContext(ctx).Model(&models.Product{})
}

// ListAll returns every product in primary-key order.
func (r *ProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.query(ctx).Order("id").Get(&products); err != nil {
		return nil, fmt.Errorf("product repository: list: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (models.Product, error) {
	var p models.Product
	err := r.query(ctx).Where("id = ?", id).First(&p)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("product repository: get %d: %w", id, err)
	}
	return p, nil
}

// Insert stores f under a fresh id and returns the stored record.
func (r *ProductRepository) Insert(ctx context.Context, f models.ProductFields) (models.Product, error) {
	p := f.Record(0)
	if err := orm.New(r.db).WithContext(ctx).Create(&p); err != nil {
		return models.Product{}, fmt.Errorf("product repository: insert: %w", err)
	}
	return p, nil
}

// Replace overwrites every writable field of product id, zero values
// included, and returns the new record. A missing id is detected from the
// affected-row count in the same statement; MySQL DSNs need
// clientFoundRows=true so an unchanged row still counts.
func (r *ProductRepository) Replace(ctx context.Context, id uint, f models.ProductFields) (models.Product, error) {
	next := f.Record(id)
	n, err := r.query(ctx).
		Where("id = ?", id).
		Select(writableColumns...).
		Updates(&next)
	if err != nil {
		return models.Product{}, fmt.Errorf("product repository: replace %d: %w", id, err)
	}
	if n == 0 {
		return models.Product{}, ErrNotFound
	}
	return next, nil
}

// Remove deletes product id permanently.
func (r *ProductRepository) Remove(ctx context.Context, id uint) error {
	n, err := orm.New(r.db).WithContext(ctx).Delete(&models.Product{}, id)
	if err != nil {
		return fmt.Errorf("product repository: remove %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
