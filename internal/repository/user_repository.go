package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wishcart/internal/model"
)

// UserRepository defines persistence operations for users and their wishlists.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// Update writes the user row and makes the stored wishlist match user.Wishlist.
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(user).Error; err != nil {
			return err
		}

		keep := make([]string, 0, len(user.Wishlist))
		for i := range user.Wishlist {
			if user.Wishlist[i].ID == uuid.Nil {
				user.Wishlist[i].ID = uuid.New()
			}
			user.Wishlist[i].UserID = user.ID
			keep = append(keep, user.Wishlist[i].ID.String())
		}

		stale := tx.Where("user_id = ?", user.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		if err := stale.Delete(&model.WishlistEntry{}).Error; err != nil {
			return err
		}

		if len(user.Wishlist) == 0 {
			return nil
		}
		// Entries are immutable snapshots, so existing rows are left untouched.
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&user.Wishlist).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.withWishlist(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.withWishlist(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) withWishlist(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Wishlist", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}
