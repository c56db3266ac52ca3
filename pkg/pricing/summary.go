package pricing

// Summary is the rounded, presentation form of a Breakdown. Server
// responses and client previews both render from it.
type Summary struct {
	BasePrice                 string  `json:"base_price"`
	ProductDiscount           string  `json:"product_discount"`
	PromotionDiscount         string  `json:"promotion_discount"`
	LogFeeDiscount            string  `json:"log_fee_discount"`
	PriceAfterProductDiscount string  `json:"price_after_product_discount"`
	PriceAfterPromotion       string  `json:"price_after_promotion"`
	PriceAfterLogFee          string  `json:"price_after_log_fee"`
	FinalPrice                string  `json:"final_price"`
	TotalDiscountAmount       string  `json:"total_discount_amount"`
	TotalDiscountPercentage   string  `json:"total_discount_percentage"`
	AppliedPromotionName      *string `json:"applied_promotion_name,omitempty"`
}

// Summary rounds every value of b to two decimals
func (b Breakdown) Summary() Summary {
	return Summary{
		BasePrice:                 FormatMoney(b.BasePrice),
		ProductDiscount:           FormatPercentage(b.ProductDiscount),
		PromotionDiscount:         FormatPercentage(b.PromotionDiscount),
		LogFeeDiscount:            FormatPercentage(b.LogFeeDiscount),
		PriceAfterProductDiscount: FormatMoney(b.PriceAfterProductDiscount),
		PriceAfterPromotion:       FormatMoney(b.PriceAfterPromotion),
		PriceAfterLogFee:          FormatMoney(b.PriceAfterLogFee),
		FinalPrice:                FormatMoney(b.FinalPrice),
		TotalDiscountAmount:       FormatMoney(b.TotalDiscountAmount),
		TotalDiscountPercentage:   FormatPercentage(b.TotalDiscountPercentage),
	}
}
