package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wishcart/internal/cache"
	apperrors "wishcart/internal/errors"
	"wishcart/internal/model"
)

func TestCatalogService_GetProduct_UsesCache(t *testing.T) {
	server := miniredis.RunT(t)
	cacheClient := cache.New(server.Addr(), "", 0)
	defer cacheClient.Close()

	shoes := newProduct("Shoes")
	repo := new(MockProductRepository)
	repo.On("FindByID", mock.Anything, shoes.ID).Return(shoes, nil).Once()

	service := NewCatalogService(repo, cacheClient)

	first, err := service.GetProduct(context.Background(), shoes.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shoes", first.ProductName)
	assert.True(t, server.Exists("product:"+shoes.ID.String()))

	second, err := service.GetProduct(context.Background(), shoes.ID)
	require.NoError(t, err)
	assert.Equal(t, shoes.ID, second.ID)
	assert.True(t, shoes.SalePrice.Equal(second.SalePrice))

	repo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	productID := uuid.New()
	repo.On("FindByID", mock.Anything, productID).Return(nil, gorm.ErrRecordNotFound)

	_, err := NewCatalogService(repo, nil).GetProduct(context.Background(), productID)

	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestCatalogService_GetProduct_RepositoryFailure(t *testing.T) {
	repo := new(MockProductRepository)
	productID := uuid.New()
	dbErr := errors.New("connection reset")
	repo.On("FindByID", mock.Anything, productID).Return(nil, dbErr)

	_, err := NewCatalogService(repo, nil).GetProduct(context.Background(), productID)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogService_ListProducts(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("List", mock.Anything).Return([]model.Product{
		{ID: uuid.New(), ProductName: "Hat", SalePrice: decimal.NewFromInt(12)},
		{ID: uuid.New(), ProductName: "Shoes", SalePrice: decimal.NewFromInt(50)},
	}, nil)

	products, err := NewCatalogService(repo, nil).ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Hat", products[0].ProductName)
}

func TestCatalogService_ListProducts_EmptyCatalog(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("List", mock.Anything).Return(nil, nil)

	products, err := NewCatalogService(repo, nil).ListProducts(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}
