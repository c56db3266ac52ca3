package request

import "time"

// CreatePromotionRequest represents a promotion creation request
type CreatePromotionRequest struct {
	Name          string    `json:"name" binding:"required,min=2,max=255"`
	Description   *string   `json:"description"`
	PromotionType string    `json:"promotion_type" binding:"required"`
	DiscountValue *string   `json:"discount_value"`
	BonusPattern  *string   `json:"bonus_pattern" binding:"omitempty,max=100"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	EndDate       time.Time `json:"end_date" binding:"required"`
	Active        *bool     `json:"active"`
	Priority      int       `json:"priority"`
}
