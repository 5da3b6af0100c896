package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a currency-formatted string to a decimal after stripping
// every occurrence of the given symbol and any comma thousands separators.
//
// Malformed or empty remainders yield decimal zero; Parse never reports an
// error. Callers that need to distinguish "zero" from "unparseable" must
// inspect the raw string themselves.
func Parse(s string, strip byte) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if r == rune(strip) || r == ',' {
			return -1
		}
		return r
	}, s)

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
