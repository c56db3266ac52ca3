package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// CustomerType represents the trade channel of a customer
type CustomerType string

const (
	CustomerTypeRetail    CustomerType = "retail"
	CustomerTypeWholesale CustomerType = "wholesale"
	CustomerTypeHospital  CustomerType = "hospital"
	CustomerTypePharmacy  CustomerType = "pharmacy"
	CustomerTypeClinic    CustomerType = "clinic"
)

// ParseCustomerType accepts any casing, e.g. "Wholesale"
func ParseCustomerType(s string) (CustomerType, bool) {
	t := CustomerType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.IsValid()
}

func (t CustomerType) IsValid() bool {
	switch t {
	case CustomerTypeRetail, CustomerTypeWholesale, CustomerTypeHospital, CustomerTypePharmacy, CustomerTypeClinic:
		return true
	}
	return false
}

func (t CustomerType) String() string {
	return string(t)
}

func (t CustomerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *CustomerType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = CustomerType(strings.ToLower(str))
	return nil
}

func (t CustomerType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *CustomerType) Scan(value interface{}) error {
	if value == nil {
		*t = CustomerTypeRetail
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = CustomerType(v)
	case []byte:
		*t = CustomerType(string(v))
	}
	return nil
}
