package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BulkPriceUpdate logs one processed price upload file
type BulkPriceUpdate struct {
	ID               string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	FileName         string    `gorm:"size:255;not null" json:"file_name"`
	UploadedBy       string    `gorm:"size:64;not null;index" json:"uploaded_by"`
	RecordsProcessed int       `gorm:"not null;default:0" json:"records_processed"`
	RecordsUpdated   int       `gorm:"not null;default:0" json:"records_updated"`
	RecordsFailed    int       `gorm:"not null;default:0" json:"records_failed"`
	ErrorLog         *string   `gorm:"type:text" json:"error_log,omitempty"` // newline separated "Row N: ..." messages
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
}

// BeforeCreate generates an id when the caller did not supply one
func (b *BulkPriceUpdate) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the BulkPriceUpdate model
func (BulkPriceUpdate) TableName() string {
	return "bulk_price_updates"
}
