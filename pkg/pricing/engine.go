// Package pricing implements the sequential discount engine used for every
// price shown or recorded by the service.
//
// Discounts compound on the running price in a fixed order: product
// discount, then promotion, then the customer's log fee discount. All
// arithmetic is exact; rounding to cents happens only when a Breakdown is
// rendered.
package pricing

import (
	"github.com/shopspring/decimal"
)

// StageKind identifies one step of the canonical discount chain
type StageKind int

const (
	StageProduct StageKind = iota
	StagePromotion
	StageLogFee
)

// CanonicalOrder is the only order in which Calculate applies discounts
var CanonicalOrder = [...]StageKind{StageProduct, StagePromotion, StageLogFee}

var hundred = decimal.NewFromInt(100)

func (k StageKind) String() string {
	switch k {
	case StageProduct:
		return "product_discount"
	case StagePromotion:
		return "promotion_discount"
	case StageLogFee:
		return "log_fee_discount"
	default:
		return "unknown"
	}
}

// Discounts holds the percentage for each stage of the chain.
// A nil Promotion means no promotion applies; the stage still runs as a 0% step.
type Discounts struct {
	Product   decimal.Decimal
	Promotion *decimal.Decimal
	LogFee    decimal.Decimal
}

func (d Discounts) percentage(k StageKind) decimal.Decimal {
	switch k {
	case StageProduct:
		return d.Product
	case StagePromotion:
		if d.Promotion == nil {
			return decimal.Zero
		}
		return *d.Promotion
	case StageLogFee:
		return d.LogFee
	default:
		panic("pricing: unknown stage " + k.String())
	}
}

// Step is one labelled percentage in an arbitrary discount chain
type Step struct {
	Label      string
	Percentage decimal.Decimal
}

// StageResult records the running price after a stage was applied
type StageResult struct {
	Kind       StageKind
	Percentage decimal.Decimal
	PriceAfter decimal.Decimal
	Skipped    bool
}

// Breakdown is the exact, unrounded result of a calculation
type Breakdown struct {
	BasePrice                 decimal.Decimal
	ProductDiscount           decimal.Decimal
	PromotionDiscount         decimal.Decimal
	LogFeeDiscount            decimal.Decimal
	HasPromotion              bool
	PriceAfterProductDiscount decimal.Decimal
	PriceAfterPromotion       decimal.Decimal
	PriceAfterLogFee          decimal.Decimal
	FinalPrice                decimal.Decimal
	TotalDiscountAmount       decimal.Decimal
	TotalDiscountPercentage   decimal.Decimal
	Stages                    []StageResult
}

// ApplyDiscount returns price reduced by pct percent.
// Negative percentages act as a markup and values above 100 go below zero.
func ApplyDiscount(price, pct decimal.Decimal) decimal.Decimal {
	return price.Sub(price.Mul(pct.Shift(-2)))
}

// ApplyChain applies steps to base in the given order and returns the price
// after each step together with the final price.
func ApplyChain(base decimal.Decimal, steps []Step) ([]decimal.Decimal, decimal.Decimal, error) {
	if base.IsNegative() {
		return nil, decimal.Zero, &ValueError{Field: "basePrice", Value: base.String(), Err: ErrInvalidInput}
	}

	price := base
	after := make([]decimal.Decimal, 0, len(steps))
	for _, s := range steps {
		price = ApplyDiscount(price, s.Percentage)
		after = append(after, price)
	}
	return after, price, nil
}

// Calculate runs the canonical product, promotion, log fee chain over basePrice.
func Calculate(basePrice decimal.Decimal, d Discounts) (Breakdown, error) {
	steps := make([]Step, len(CanonicalOrder))
	for i, k := range CanonicalOrder {
		steps[i] = Step{Label: k.String(), Percentage: d.percentage(k)}
	}

	after, final, err := ApplyChain(basePrice, steps)
	if err != nil {
		return Breakdown{}, err
	}

	b := Breakdown{
		BasePrice:         basePrice,
		ProductDiscount:   d.Product,
		PromotionDiscount: d.percentage(StagePromotion),
		LogFeeDiscount:    d.LogFee,
		HasPromotion:      d.Promotion != nil,
		FinalPrice:        final,
		Stages:            make([]StageResult, len(CanonicalOrder)),
	}

	for i, k := range CanonicalOrder {
		b.Stages[i] = StageResult{
			Kind:       k,
			Percentage: steps[i].Percentage,
			PriceAfter: after[i],
			Skipped:    k == StagePromotion && d.Promotion == nil,
		}
		switch k {
		case StageProduct:
			b.PriceAfterProductDiscount = after[i]
		case StagePromotion:
			b.PriceAfterPromotion = after[i]
		case StageLogFee:
			b.PriceAfterLogFee = after[i]
		}
	}

	b.TotalDiscountAmount = basePrice.Sub(final)
	if basePrice.IsZero() {
		b.TotalDiscountPercentage = decimal.Zero
	} else {
		b.TotalDiscountPercentage = b.TotalDiscountAmount.Mul(hundred).Div(basePrice)
	}

	return b, nil
}
