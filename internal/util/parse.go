package util

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseIntDefault coerces a spreadsheet cell to an integer. Bad or empty
// input falls back to def instead of failing: human-authored files carry
// blanks and stray text, and rejecting whole rows for them is worse than
// assuming zero.
func ParseIntDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// "10.0" style cells from spreadsheet tools
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return def
}

// ParseDecimalDefault coerces a cell to a decimal, falling back to zero on
// bad input.
func ParseDecimalDefault(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	// tolerate "50,000" style thousand separators
	clean := strings.NewReplacer(",", "", " ", "").Replace(s)
	if d, err := decimal.NewFromString(clean); err == nil {
		return d
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d
	}
	return decimal.Zero
}
