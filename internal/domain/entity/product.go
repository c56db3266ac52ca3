package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog item. Prices and discounts are kept in their legacy
// string form and parsed by the pricing package when used.
type Product struct {
	ID              string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Barcode         *string   `gorm:"size:100;index" json:"barcode,omitempty"`
	BasePrice       string    `gorm:"size:20;not null" json:"base_price"`
	ProductDiscount string    `gorm:"size:10;not null;default:'0'" json:"product_discount"`
	BonusPattern    *string   `gorm:"size:100" json:"bonus_pattern,omitempty"` // e.g. "1@40%", informational only
	Category        *string   `gorm:"size:100;index" json:"category,omitempty"`
	Active          bool      `gorm:"not null;index" json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate generates an id when the caller did not supply one
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
