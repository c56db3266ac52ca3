package pricing

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Stored values may carry currency symbols, spaces, thousands separators or %.
var nonNumeric = regexp.MustCompile(`[^0-9.\-]+`)

// ParseMoney parses a stored or user supplied money string such as "N$ 1,245.50"
func ParseMoney(s string) (decimal.Decimal, error) {
	return parseNumeric(s)
}

// ParsePercentage parses a percentage string such as "12.5%"
func ParsePercentage(s string) (decimal.Decimal, error) {
	return parseNumeric(s)
}

// ParseOptionalPercentage treats an empty string as 0, matching the "0"
// default of legacy discount columns.
func ParseOptionalPercentage(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	return parseNumeric(s)
}

func parseNumeric(s string) (decimal.Decimal, error) {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	if cleaned == "" {
		return decimal.Zero, &ValueError{Value: s, Err: ErrMalformedValue}
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &ValueError{Value: s, Err: ErrMalformedValue}
	}
	return d, nil
}

// Round2 rounds half away from zero to two decimal places
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatMoney renders the canonical storage and wire form: exactly two
// decimals, no separators.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatPercentage uses the same canonical form as money
func FormatPercentage(d decimal.Decimal) string {
	return d.StringFixed(2)
}
