package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/cospharm-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Promotion is a time boxed discount. DiscountValue is a percentage for
// percentage promotions and a money amount for fixed_amount promotions.
type Promotion struct {
	ID            string             `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name          string             `gorm:"size:255;not null" json:"name"`
	Description   *string            `gorm:"type:text" json:"description,omitempty"`
	PromotionType enum.PromotionType `gorm:"size:20;not null" json:"promotion_type"`
	DiscountValue *string            `gorm:"size:20" json:"discount_value,omitempty"`
	BonusPattern  *string            `gorm:"size:100" json:"bonus_pattern,omitempty"`
	StartDate     time.Time          `gorm:"not null;index" json:"start_date"`
	EndDate       time.Time          `gorm:"not null;index" json:"end_date"`
	Active        bool               `gorm:"not null;index" json:"active"`
	Priority      int                `gorm:"not null;default:0" json:"priority"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// BeforeCreate generates an id when the caller did not supply one
func (p *Promotion) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Promotion model
func (Promotion) TableName() string {
	return "promotions"
}

// IsActiveAt reports whether the promotion applies at t. Both ends are inclusive.
func (p *Promotion) IsActiveAt(t time.Time) bool {
	return p.Active && !t.Before(p.StartDate) && !t.After(p.EndDate)
}
