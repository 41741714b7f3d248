// Package dto holds the wire records exchanged with the remote API and their
// mappings to domain entities. Mappings are total: a missing optional field
// maps to its documented default and an unknown enum maps to its fallback
// variant, so a response that decoded never fails to map.
package dto

import "github.com/shopspring/decimal"

func init() {
	// The API exchanges amounts as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

func decOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func strOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
