package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "89.00", "89"},
		{"currency prefix", "N$245.00", "245"},
		{"dollar with spaces", "$ 1 000.50", "1000.5"},
		{"thousands separator", "1,234.56", "1234.56"},
		{"negative", "-12.30", "-12.3"},
		{"surrounding whitespace", "  7.50 ", "7.5"},
		{"integer", "100", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tt.want)), "got %s", got)
		})
	}
}

func TestParseMoney_Malformed(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "N$", "1.2.3", "--5"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMoney(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedValue)

			var ve *ValueError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, input, ve.Value)
		})
	}
}

func TestParsePercentage(t *testing.T) {
	got, err := ParsePercentage("12.5%")
	require.NoError(t, err)
	assert.True(t, got.Equal(d("12.5")))

	got, err = ParsePercentage("40")
	require.NoError(t, err)
	assert.True(t, got.Equal(d("40")))

	_, err = ParsePercentage("%")
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestParseOptionalPercentage(t *testing.T) {
	got, err := ParseOptionalPercentage("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = ParseOptionalPercentage("  ")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = ParseOptionalPercentage("7.50")
	require.NoError(t, err)
	assert.True(t, got.Equal(d("7.5")))

	_, err = ParseOptionalPercentage("n/a")
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "95.00", FormatMoney(d("95")))
	assert.Equal(t, "213.75", FormatMoney(d("213.75")))
	assert.Equal(t, "1234567.89", FormatMoney(d("1234567.891")))
	assert.Equal(t, "0.00", FormatMoney(d("0")))
	assert.Equal(t, "12.35", FormatMoney(d("12.345")))
	assert.Equal(t, "-12.35", FormatMoney(d("-12.345")))
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"0",
		"0.005",
		"12.345",
		"12.344999",
		"-12.345",
		"49.395",
		"213.75",
		"1245.505",
		"99999999.999",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			x := d(in)
			back, err := ParseMoney(FormatMoney(x))
			require.NoError(t, err)
			assert.True(t, back.Equal(Round2(x)), "%s -> %s", in, back)
		})
	}

	t.Run("currency prefixed input", func(t *testing.T) {
		x, err := ParseMoney("N$ 1,245.505")
		require.NoError(t, err)
		assert.Equal(t, "1245.51", FormatMoney(x))

		back, err := ParseMoney(FormatMoney(x))
		require.NoError(t, err)
		assert.True(t, back.Equal(Round2(x)))
	})
}
