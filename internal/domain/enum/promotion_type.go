package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PromotionType selects how a promotion's discount value is interpreted
type PromotionType string

const (
	PromotionTypePercentage  PromotionType = "percentage"
	PromotionTypeFixedAmount PromotionType = "fixed_amount"
	PromotionTypeBonusBuy    PromotionType = "bonus_buy"
	PromotionTypeBundle      PromotionType = "bundle"
)

func (t PromotionType) IsValid() bool {
	switch t {
	case PromotionTypePercentage, PromotionTypeFixedAmount, PromotionTypeBonusBuy, PromotionTypeBundle:
		return true
	}
	return false
}

func (t PromotionType) String() string {
	return string(t)
}

func (t PromotionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *PromotionType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = PromotionType(str)
	return nil
}

func (t PromotionType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *PromotionType) Scan(value interface{}) error {
	if value == nil {
		*t = PromotionTypePercentage
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = PromotionType(v)
	case []byte:
		*t = PromotionType(string(v))
	}
	return nil
}
