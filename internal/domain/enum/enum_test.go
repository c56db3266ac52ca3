package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomerType(t *testing.T) {
	ct, ok := ParseCustomerType(" Wholesale ")
	assert.True(t, ok)
	assert.Equal(t, CustomerTypeWholesale, ct)

	_, ok = ParseCustomerType("vip")
	assert.False(t, ok)
}

func TestCustomerType_Scan(t *testing.T) {
	var ct CustomerType
	require.NoError(t, ct.Scan(nil))
	assert.Equal(t, CustomerTypeRetail, ct)

	require.NoError(t, ct.Scan([]byte("hospital")))
	assert.Equal(t, CustomerTypeHospital, ct)
}

func TestCustomerType_JSON(t *testing.T) {
	var ct CustomerType
	require.NoError(t, json.Unmarshal([]byte(`"Pharmacy"`), &ct))
	assert.Equal(t, CustomerTypePharmacy, ct)

	out, err := json.Marshal(CustomerTypeClinic)
	require.NoError(t, err)
	assert.Equal(t, `"clinic"`, string(out))
}

func TestPromotionType(t *testing.T) {
	for _, pt := range []PromotionType{PromotionTypePercentage, PromotionTypeFixedAmount, PromotionTypeBonusBuy, PromotionTypeBundle} {
		assert.True(t, pt.IsValid(), pt)
	}
	assert.False(t, PromotionType("bogof").IsValid())

	var pt PromotionType
	require.NoError(t, pt.Scan("bundle"))
	assert.Equal(t, PromotionTypeBundle, pt)
}
