package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WishlistEntry is a snapshot of a catalog product taken when it was added to
// a user's wishlist. It is not linked to the product afterwards.
type WishlistEntry struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID       `json:"-" gorm:"type:char(36);not null;index"`
	ProductName  string          `json:"productName" gorm:"size:255;not null"`
	ProductLink  string          `json:"productLink" gorm:"size:1024"`
	ProductImage string          `json:"productImage" gorm:"size:1024"`
	SalePrice    decimal.Decimal `json:"salePrice" gorm:"type:decimal(20,2);not null;default:0"`
	Position     int             `json:"-" gorm:"not null;index"`
	CreatedAt    time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (w *WishlistEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
