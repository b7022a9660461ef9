package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paygate-app/paygate/pkg/currency"
)

func TestIsSupported(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"USD", true},
		{"usd", true},
		{"Jpy", true},
		{"XYZ", false},
		{"343", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, currency.IsSupported(tt.code))
		})
	}
}

func TestDecimals(t *testing.T) {
	assert.Equal(t, 2, currency.Decimals("usd"))
	assert.Equal(t, 0, currency.Decimals("JPY"))
	assert.Equal(t, 3, currency.Decimals("KWD"))
	assert.Equal(t, currency.DefaultDecimals, currency.Decimals("XYZ"))
}

func TestGet(t *testing.T) {
	meta, ok := currency.Get("EUR")
	assert.True(t, ok)
	assert.Equal(t, "€", meta.Symbol)

	_, ok = currency.Get("ZZZ")
	assert.False(t, ok)
}
