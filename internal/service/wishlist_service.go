package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "wishcart/internal/errors"
	"wishcart/internal/model"
	"wishcart/internal/repository"
)

// WishlistService manages the wishlist of an authenticated user.
type WishlistService interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]model.WishlistEntry, error)
	AddToWishlist(ctx context.Context, userID, productID uuid.UUID) ([]model.WishlistEntry, error)
	RemoveFromWishlist(ctx context.Context, userID, entryID uuid.UUID) error
}

type wishlistService struct {
	userRepo repository.UserRepository
	catalog  CatalogService
	logger   *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(userRepo repository.UserRepository, catalog CatalogService, logger *slog.Logger) WishlistService {
	return &wishlistService{
		userRepo: userRepo,
		catalog:  catalog,
		logger:   logger,
	}
}

// GetWishlist returns the wishlist in insertion order.
func (s *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]model.WishlistEntry, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return entries(user), nil
}

// AddToWishlist snapshots the product into the wishlist. A product whose name
// is already on the wishlist is rejected, whatever its id.
func (s *wishlistService) AddToWishlist(ctx context.Context, userID, productID uuid.UUID) ([]model.WishlistEntry, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.HasProductNamed(product.ProductName) {
		return nil, apperrors.ErrAlreadyInWishlist
	}

	entry := user.AddToWishlist(product)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("save wishlist: %w", err)
	}

	s.logger.DebugContext(ctx, "wishlist entry added", "user_id", userID, "entry_id", entry.ID, "product_id", productID)
	return entries(user), nil
}

// RemoveFromWishlist deletes the entry with the given id. Removing an entry
// that is not on the wishlist succeeds without changes.
func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID, entryID uuid.UUID) error {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	removed := user.RemoveFromWishlist(entryID)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("save wishlist: %w", err)
	}

	s.logger.DebugContext(ctx, "wishlist entry removed", "user_id", userID, "entry_id", entryID, "removed", removed)
	return nil
}

func (s *wishlistService) findUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func entries(user *model.User) []model.WishlistEntry {
	if user.Wishlist == nil {
		return []model.WishlistEntry{}
	}
	return user.Wishlist
}
