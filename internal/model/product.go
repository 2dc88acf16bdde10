package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Prices go out as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a catalog item. The API only reads products; they are
// written by the seed tool.
type Product struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	ProductName string          `json:"productName" gorm:"size:255;not null;index"`
	ProductLink string          `json:"productLink" gorm:"size:1024"`
	ImageLink   string          `json:"imageLink" gorm:"size:1024"`
	SalePrice   decimal.Decimal `json:"salePrice" gorm:"type:decimal(20,2);not null;default:0"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
