package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/cospharm-api/internal/domain/entity"
	domainRepo "github.com/sangkips/cospharm-api/internal/domain/repository"
	"github.com/sangkips/cospharm-api/pkg/pagination"
	"gorm.io/gorm"
)

type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository creates a new promotion repository
func NewPromotionRepository(db *gorm.DB) domainRepo.PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

func (r *promotionRepository) GetByID(ctx context.Context, id string) (*entity.Promotion, error) {
	var promotion entity.Promotion
	err := r.db.WithContext(ctx).First(&promotion, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Promotion{}, "id = ?", id).Error
}

func (r *promotionRepository) List(ctx context.Context, params *pagination.PaginationParams, activeOnly bool) ([]entity.Promotion, int64, error) {
	var promotions []entity.Promotion
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Promotion{}).Scopes(ActiveScope(activeOnly))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Scopes(byPriority).
		Find(&promotions).Error

	return promotions, total, err
}

func (r *promotionRepository) ListEligible(ctx context.Context, asOf time.Time) ([]entity.Promotion, error) {
	var promotions []entity.Promotion
	err := eligibleAt(r.db.WithContext(ctx), asOf).Find(&promotions).Error
	return promotions, err
}

func eligibleAt(db *gorm.DB, asOf time.Time) *gorm.DB {
	return db.Model(&entity.Promotion{}).
		Where("active = ? AND start_date <= ? AND end_date >= ?", true, asOf, asOf).
		Scopes(byPriority)
}

func byPriority(db *gorm.DB) *gorm.DB {
	return db.Order("priority DESC").Order("created_at DESC").Order("id DESC")
}
