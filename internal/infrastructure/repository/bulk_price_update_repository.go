package repository

import (
	"context"

	"github.com/sangkips/cospharm-api/internal/domain/entity"
	domainRepo "github.com/sangkips/cospharm-api/internal/domain/repository"
	"gorm.io/gorm"
)

type bulkPriceUpdateRepository struct {
	db *gorm.DB
}

// NewBulkPriceUpdateRepository creates a new upload history repository
func NewBulkPriceUpdateRepository(db *gorm.DB) domainRepo.BulkPriceUpdateRepository {
	return &bulkPriceUpdateRepository{db: db}
}

func (r *bulkPriceUpdateRepository) Create(ctx context.Context, update *entity.BulkPriceUpdate) error {
	return r.db.WithContext(ctx).Create(update).Error
}

func (r *bulkPriceUpdateRepository) ListRecent(ctx context.Context, limit int) ([]entity.BulkPriceUpdate, error) {
	var updates []entity.BulkPriceUpdate
	err := r.db.WithContext(ctx).
		Scopes(RecentFirst).
		Limit(limit).
		Find(&updates).Error
	return updates, err
}
