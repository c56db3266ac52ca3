package repository

import (
	"context"

	"github.com/sangkips/cospharm-api/internal/domain/entity"
)

// PricingAuditRepository is append-only: there is no update or delete.
type PricingAuditRepository interface {
	Append(ctx context.Context, audit *entity.PricingAudit) error
	// ListRecent returns at most limit records, most recent first
	ListRecent(ctx context.Context, limit int) ([]entity.PricingAudit, error)
	ListByProduct(ctx context.Context, productID string, limit int) ([]entity.PricingAudit, error)
}
