package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered shopper together with their wishlist.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Wishlist []WishlistEntry `json:"wishlist,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// PublicUser is the projection of a user that may be returned to clients.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Public strips everything but id, name and email.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// HasProductNamed reports whether the wishlist already holds an entry with the
// given product name. Names are compared exactly.
func (u *User) HasProductNamed(name string) bool {
	for _, entry := range u.Wishlist {
		if entry.ProductName == name {
			return true
		}
	}
	return false
}

// AddToWishlist appends a snapshot of the product and returns the new entry.
func (u *User) AddToWishlist(product *Product) WishlistEntry {
	position := 0
	for _, entry := range u.Wishlist {
		if entry.Position >= position {
			position = entry.Position + 1
		}
	}

	entry := WishlistEntry{
		ID:           uuid.New(),
		UserID:       u.ID,
		ProductName:  product.ProductName,
		ProductLink:  product.ProductLink,
		ProductImage: product.ImageLink,
		SalePrice:    product.SalePrice,
		Position:     position,
	}
	u.Wishlist = append(u.Wishlist, entry)
	return entry
}

// RemoveFromWishlist drops every entry with the given id and reports how many
// were removed.
func (u *User) RemoveFromWishlist(entryID uuid.UUID) int {
	kept := u.Wishlist[:0]
	removed := 0
	for _, entry := range u.Wishlist {
		if entry.ID == entryID {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	u.Wishlist = kept
	return removed
}
