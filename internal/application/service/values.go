package service

import (
	"strings"

	"github.com/sangkips/cospharm-api/pkg/apperror"
	"github.com/sangkips/cospharm-api/pkg/pricing"
	"github.com/shopspring/decimal"
)

var maxPercentage = decimal.NewFromInt(100)

// canonicalMoney validates a caller supplied amount and returns its storage form
func canonicalMoney(field, raw string) (string, error) {
	m, err := pricing.ParseMoney(raw)
	if err != nil {
		return "", apperror.NewInvalidInputError(field, field+" is not a valid amount")
	}
	if m.IsNegative() {
		return "", apperror.NewInvalidInputError(field, field+" must not be negative")
	}
	return pricing.FormatMoney(m), nil
}

// canonicalPercentage validates a caller supplied discount. Blank means 0.
func canonicalPercentage(field, raw string) (string, error) {
	p, err := pricing.ParseOptionalPercentage(raw)
	if err != nil {
		return "", apperror.NewInvalidInputError(field, field+" is not a valid percentage")
	}
	if p.IsNegative() || p.GreaterThan(maxPercentage) {
		return "", apperror.NewInvalidInputError(field, field+" must be between 0 and 100")
	}
	return pricing.FormatPercentage(p), nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
