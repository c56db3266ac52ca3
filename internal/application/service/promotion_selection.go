package service

import (
	"sort"
	"time"

	"github.com/sangkips/cospharm-api/internal/domain/entity"
	"github.com/sangkips/cospharm-api/internal/domain/enum"
	"github.com/sangkips/cospharm-api/pkg/pricing"
	"github.com/shopspring/decimal"
)

// PromotionApplier converts a promotion into a percentage for the discount
// engine. ok is false when the engine cannot price that promotion type.
type PromotionApplier func(p *entity.Promotion) (pct decimal.Decimal, ok bool, err error)

// DefaultPromotionAppliers prices percentage promotions only. Fixed amount,
// bonus buy and bundle promotions are listed and stored but not yet applied.
func DefaultPromotionAppliers() map[enum.PromotionType]PromotionApplier {
	return map[enum.PromotionType]PromotionApplier{
		enum.PromotionTypePercentage: percentageApplier,
	}
}

func percentageApplier(p *entity.Promotion) (decimal.Decimal, bool, error) {
	if p.DiscountValue == nil {
		return decimal.Zero, true, &pricing.ValueError{Field: "discountValue", Err: pricing.ErrMalformedValue}
	}
	pct, err := pricing.ParsePercentage(*p.DiscountValue)
	if err != nil {
		return decimal.Zero, true, err
	}
	return pct, true, nil
}

// SelectPromotion picks the single promotion that applies at asOf among
// those the appliers know how to price: highest priority, then most recently
// created, then highest id. It returns nil when none qualifies.
func SelectPromotion(promotions []entity.Promotion, asOf time.Time, appliers map[enum.PromotionType]PromotionApplier) *entity.Promotion {
	candidates := make([]entity.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if !p.IsActiveAt(asOf) {
			continue
		}
		if _, ok := appliers[p.PromotionType]; !ok {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	selected := candidates[0]
	return &selected
}
