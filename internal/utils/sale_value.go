package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseSaleValue parses a potential-sale-value string as entered by users. Locale
// grouping separators and surrounding whitespace are tolerated ("1,20,000.50"),
// the stored canonical form is decimal.String().
func ParseSaleValue(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	return decimal.NewFromString(cleaned)
}

// NormalizeSaleValue returns the canonical string form of a sale value, or the input
// unchanged when it does not parse (caller decides whether that is an error).
func NormalizeSaleValue(s string) (string, bool) {
	if strings.TrimSpace(s) == "" {
		return "", true
	}
	d, err := ParseSaleValue(s)
	if err != nil {
		return s, false
	}
	return d.String(), true
}
