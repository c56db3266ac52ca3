package service

import (
	"context"
	"strings"
	"time"

	"github.com/sangkips/cospharm-api/internal/domain/entity"
	"github.com/sangkips/cospharm-api/internal/domain/enum"
	"github.com/sangkips/cospharm-api/internal/domain/repository"
	"github.com/sangkips/cospharm-api/pkg/apperror"
	"github.com/sangkips/cospharm-api/pkg/pagination"
	"github.com/sangkips/cospharm-api/pkg/utils"
)

// PromotionService manages the promotion calendar
type PromotionService struct {
	promotionRepo repository.PromotionRepository
}

// NewPromotionService creates a new promotion service
func NewPromotionService(promotionRepo repository.PromotionRepository) *PromotionService {
	return &PromotionService{promotionRepo: promotionRepo}
}

// CreatePromotionInput represents the create promotion input
type CreatePromotionInput struct {
	Name          string
	Description   *string
	PromotionType string
	DiscountValue *string
	BonusPattern  *string
	StartDate     time.Time
	EndDate       time.Time
	Active        *bool
	Priority      int
}

// CreatePromotion validates and stores a promotion
func (s *PromotionService) CreatePromotion(ctx context.Context, input *CreatePromotionInput) (*entity.Promotion, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewInvalidInputError("name", "name is required")
	}

	promoType := enum.PromotionType(strings.ToLower(strings.TrimSpace(input.PromotionType)))
	if !promoType.IsValid() {
		return nil, apperror.NewInvalidInputError("promotion_type", "promotion_type must be one of percentage, fixed_amount, bonus_buy, bundle")
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, apperror.NewInvalidInputError("start_date", "start_date and end_date are required")
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, apperror.NewInvalidInputError("end_date", "end_date must not be before start_date")
	}

	promotion := &entity.Promotion{
		Name:          name,
		Description:   trimmedOrNil(input.Description),
		PromotionType: promoType,
		BonusPattern:  trimmedOrNil(input.BonusPattern),
		StartDate:     input.StartDate.UTC(),
		EndDate:       input.EndDate.UTC(),
		Active:        input.Active == nil || *input.Active,
		Priority:      input.Priority,
	}

	value := trimmedOrNil(input.DiscountValue)
	switch promoType {
	case enum.PromotionTypePercentage:
		if value == nil {
			return nil, apperror.NewInvalidInputError("discount_value", "discount_value is required for percentage promotions")
		}
		pct, err := canonicalPercentage("discount_value", *value)
		if err != nil {
			return nil, err
		}
		promotion.DiscountValue = &pct
	case enum.PromotionTypeFixedAmount:
		if value == nil {
			return nil, apperror.NewInvalidInputError("discount_value", "discount_value is required for fixed_amount promotions")
		}
		amount, err := canonicalMoney("discount_value", *value)
		if err != nil {
			return nil, err
		}
		promotion.DiscountValue = &amount
	case enum.PromotionTypeBonusBuy:
		if promotion.BonusPattern == nil {
			return nil, apperror.NewInvalidInputError("bonus_pattern", "bonus_pattern is required for bonus_buy promotions")
		}
	}

	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, apperror.NewStoreUnavailableError("promotion", err)
	}
	return promotion, nil
}

// GetPromotion retrieves a promotion by ID
func (s *PromotionService) GetPromotion(ctx context.Context, id string) (*entity.Promotion, error) {
	id = utils.NormalizeID(id)
	promotion, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("promotion", err)
	}
	if promotion == nil {
		return nil, apperror.NewRecordNotFoundError("Promotion", id)
	}
	return promotion, nil
}

// ListPromotions lists promotions by priority
func (s *PromotionService) ListPromotions(ctx context.Context, params *pagination.PaginationParams, activeOnly bool) (*pagination.PaginatedResult[entity.Promotion], error) {
	params.Validate()
	promotions, total, err := s.promotionRepo.List(ctx, params, activeOnly)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("promotion", err)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(promotions, pag), nil
}

// DeletePromotion removes a promotion. Audits keep the id they recorded.
func (s *PromotionService) DeletePromotion(ctx context.Context, id string) error {
	promotion, err := s.GetPromotion(ctx, id)
	if err != nil {
		return err
	}
	if err := s.promotionRepo.Delete(ctx, promotion.ID); err != nil {
		return apperror.NewStoreUnavailableError("promotion", err)
	}
	return nil
}
