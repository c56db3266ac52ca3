package repository

import (
	"context"

	"github.com/sangkips/cospharm-api/internal/domain/entity"
)

// BulkPriceUpdateRepository stores the upload history
type BulkPriceUpdateRepository interface {
	Create(ctx context.Context, update *entity.BulkPriceUpdate) error
	ListRecent(ctx context.Context, limit int) ([]entity.BulkPriceUpdate, error)
}
