package repository

import (
	"context"

	"github.com/sangkips/cospharm-api/internal/domain/entity"
	domainRepo "github.com/sangkips/cospharm-api/internal/domain/repository"
	"gorm.io/gorm"
)

type pricingAuditRepository struct {
	db *gorm.DB
}

// NewPricingAuditRepository creates the append-only audit repository
func NewPricingAuditRepository(db *gorm.DB) domainRepo.PricingAuditRepository {
	return &pricingAuditRepository{db: db}
}

func (r *pricingAuditRepository) Append(ctx context.Context, audit *entity.PricingAudit) error {
	return r.db.WithContext(ctx).Create(audit).Error
}

func (r *pricingAuditRepository) ListRecent(ctx context.Context, limit int) ([]entity.PricingAudit, error) {
	var audits []entity.PricingAudit
	err := r.db.WithContext(ctx).
		Scopes(RecentFirst).
		Limit(limit).
		Find(&audits).Error
	return audits, err
}

func (r *pricingAuditRepository) ListByProduct(ctx context.Context, productID string, limit int) ([]entity.PricingAudit, error) {
	var audits []entity.PricingAudit
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Scopes(RecentFirst).
		Limit(limit).
		Find(&audits).Error
	return audits, err
}
