package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/cospharm-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer represents a buying account. LogFeeDiscount is the percentage
// applied last in every price calculated for this customer.
type Customer struct {
	ID             string            `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name           string            `gorm:"size:255;not null" json:"name"`
	Email          *string           `gorm:"size:320" json:"email,omitempty"`
	Phone          *string           `gorm:"size:50" json:"phone,omitempty"`
	Address        *string           `gorm:"type:text" json:"address,omitempty"`
	LogFeeDiscount string            `gorm:"size:10;not null;default:'0'" json:"log_fee_discount"`
	CustomerType   enum.CustomerType `gorm:"size:50;not null;default:'retail'" json:"customer_type"`
	Active         bool              `gorm:"not null;index" json:"active"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// BeforeCreate generates an id when the caller did not supply one
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
