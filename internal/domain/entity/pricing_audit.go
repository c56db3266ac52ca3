package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrAuditImmutable is returned when something tries to change a stored audit row
var ErrAuditImmutable = errors.New("pricing audit records are immutable")

// PricingAudit is the append-only record of one calculation. All values are
// canonical two decimal strings.
type PricingAudit struct {
	ID                string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	ProductID         string    `gorm:"type:varchar(64);not null;index" json:"product_id"`
	CustomerID        *string   `gorm:"type:varchar(64);index" json:"customer_id,omitempty"`
	PromotionID       *string   `gorm:"type:varchar(64)" json:"promotion_id,omitempty"`
	BasePrice         string    `gorm:"size:20;not null" json:"base_price"`
	ProductDiscount   string    `gorm:"size:10;not null" json:"product_discount"`
	PromotionDiscount *string   `gorm:"size:10" json:"promotion_discount,omitempty"`
	LogFeeDiscount    string    `gorm:"size:10;not null" json:"log_fee_discount"`
	FinalPrice        string    `gorm:"size:20;not null" json:"final_price"`
	CalculatedBy      *string   `gorm:"size:64" json:"calculated_by,omitempty"`
	CreatedAt         time.Time `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate generates an id when the caller did not supply one
func (a *PricingAudit) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// BeforeUpdate rejects every update
func (a *PricingAudit) BeforeUpdate(tx *gorm.DB) error {
	return ErrAuditImmutable
}

// BeforeDelete rejects every delete
func (a *PricingAudit) BeforeDelete(tx *gorm.DB) error {
	return ErrAuditImmutable
}

// TableName returns the table name for the PricingAudit model
func (PricingAudit) TableName() string {
	return "pricing_audit"
}
