package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/catalog/app/models"
	"github.com/shashiranjanraj/catalog/app/services"
)

var errMissing = errors.New("missing")

type mockStore struct {
	mock.Mock
}

func (m *mockStore) ListAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockStore) GetByID(ctx context.Context, id uint) (models.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *mockStore) Insert(ctx context.Context, f models.ProductFields) (models.Product, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *mockStore) Replace(ctx context.Context, id uint, f models.ProductFields) (models.Product, error) {
	args := m.Called(ctx, id, f)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *mockStore) Remove(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func TestUpdateChecksExistenceFirst(t *testing.T) {
	ctx := context.Background()
	store := &mockStore{}
	store.On("GetByID", ctx, uint(4)).Return(models.Product{}, errMissing)

	_, err := services.NewProductService(store).Update(ctx, 4, models.ProductFields{Name: "x"})

	assert.ErrorIs(t, err, errMissing)
	store.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateReplaces(t *testing.T) {
	ctx := context.Background()
	f := models.ProductFields{Name: "Gadget", Price: 3.5, Stock: 1}
	store := &mockStore{}
	store.On("GetByID", ctx, uint(2)).Return(models.Product{ID: 2, Name: "Widget"}, nil)
	store.On("Replace", ctx, uint(2), f).Return(f.Record(2), nil)

	p, err := services.NewProductService(store).Update(ctx, 2, f)

	require.NoError(t, err)
	assert.Equal(t, f.Record(2), p)
	store.AssertExpectations(t)
	store.AssertNumberOfCalls(t, "GetByID", 1)
	store.AssertNumberOfCalls(t, "Replace", 1)
}

func TestDeleteChecksExistenceFirst(t *testing.T) {
	ctx := context.Background()
	store := &mockStore{}
	store.On("GetByID", ctx, uint(9)).Return(models.Product{}, errMissing)

	err := services.NewProductService(store).Delete(ctx, 9)

	assert.ErrorIs(t, err, errMissing)
	store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestCreateDelegatesToInsert(t *testing.T) {
	ctx := context.Background()
	f := models.ProductFields{Name: "Widget", Price: 9.99, Stock: 5}
	store := &mockStore{}
	store.On("Insert", ctx, f).Return(f.Record(1), nil)

	p, err := services.NewProductService(store).Create(ctx, f)

	require.NoError(t, err)
	assert.Equal(t, uint(1), p.ID)
	store.AssertExpectations(t)
}
