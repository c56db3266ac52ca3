package request

import "time"

// CalculatePriceRequest represents a price calculation request
type CalculatePriceRequest struct {
	ProductID  string     `json:"product_id" binding:"required,max=64"`
	CustomerID *string    `json:"customer_id" binding:"omitempty,max=64"`
	AsOf       *time.Time `json:"as_of"`
}

// PreviewPriceRequest carries raw values for an unaudited calculation
type PreviewPriceRequest struct {
	BasePrice         string  `json:"base_price" binding:"required"`
	ProductDiscount   string  `json:"product_discount"`
	PromotionDiscount *string `json:"promotion_discount"`
	LogFeeDiscount    string  `json:"log_fee_discount"`
}
