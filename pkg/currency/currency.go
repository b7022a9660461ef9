// Package currency holds metadata for the currencies the gateway
// accepts at checkout. Amounts are always handled in minor units; the
// decimals here exist for display and for zero-decimal currencies
// where the minor unit is the major unit.
package currency

import "strings"

// DefaultDecimals is the number of minor-unit decimals assumed for
// codes without explicit metadata.
const DefaultDecimals = 2

// Meta describes one supported currency.
type Meta struct {
	Decimals int
	Symbol   string
}

var supported = map[string]Meta{
	"USD": {Decimals: 2, Symbol: "$"},
	"EUR": {Decimals: 2, Symbol: "€"},
	"GBP": {Decimals: 2, Symbol: "£"},
	"JPY": {Decimals: 0, Symbol: "¥"},
	"KWD": {Decimals: 3, Symbol: "د.ك"},
	"EGP": {Decimals: 2, Symbol: "£"},
	"CAD": {Decimals: 2, Symbol: "C$"},
	"AUD": {Decimals: 2, Symbol: "A$"},
	"CHF": {Decimals: 2, Symbol: "CHF"},
	"CNY": {Decimals: 2, Symbol: "¥"},
	"INR": {Decimals: 2, Symbol: "₹"},
}

// IsSupported reports whether code names a currency the gateway
// accepts. Matching is case-insensitive.
func IsSupported(code string) bool {
	_, ok := supported[strings.ToUpper(code)]
	return ok
}

// Get returns the metadata for code.
func Get(code string) (Meta, bool) {
	meta, ok := supported[strings.ToUpper(code)]
	return meta, ok
}

// Decimals returns the minor-unit decimals for code, falling back to
// DefaultDecimals for unknown codes.
func Decimals(code string) int {
	if meta, ok := Get(code); ok {
		return meta.Decimals
	}
	return DefaultDecimals
}
