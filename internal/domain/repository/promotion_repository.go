package repository

import (
	"context"
	"time"

	"github.com/sangkips/cospharm-api/internal/domain/entity"
	"github.com/sangkips/cospharm-api/pkg/pagination"
)

// PromotionRepository defines the interface for promotion data operations
type PromotionRepository interface {
	Create(ctx context.Context, promotion *entity.Promotion) error
	GetByID(ctx context.Context, id string) (*entity.Promotion, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params *pagination.PaginationParams, activeOnly bool) ([]entity.Promotion, int64, error)
	// ListEligible returns promotions active at asOf ordered by priority desc,
	// created_at desc, id desc
	ListEligible(ctx context.Context, asOf time.Time) ([]entity.Promotion, error)
}
