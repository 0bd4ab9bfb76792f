// Package money holds the presentation-time rounding rules. Payroll amounts
// are carried at full float precision internally and rounded to two decimal
// places only at the rendering boundary.
package money

import "github.com/shopspring/decimal"

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	r, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return r
}

// Format2 renders an amount the way the pay sheets print it.
func Format2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
