package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wishcart/internal/cache"
	apperrors "wishcart/internal/errors"
	"wishcart/internal/model"
	"wishcart/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// CatalogService exposes read access to products.
type CatalogService interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
}

type catalogService struct {
	repo  repository.ProductRepository
	cache *cache.Client
}

// NewCatalogService creates a new catalog service. cache may be nil.
func NewCatalogService(repo repository.ProductRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		repo:  repo,
		cache: cache,
	}
}

// ProductCacheKey is the redis key holding the cached product.
func ProductCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id.String())
}

// GetProduct retrieves a product by ID with caching.
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var cached model.Product
	if s.cache.GetJSON(ctx, ProductCacheKey(id), &cached) {
		return &cached, nil
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	_ = s.cache.SetJSON(ctx, ProductCacheKey(id), product, productCacheTTL)
	return product, nil
}

// ListProducts returns the whole catalog.
func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}
