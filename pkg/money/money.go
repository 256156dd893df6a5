// Package money centralizes commission arithmetic. Persisted amounts are
// float64 columns rounded to 2 decimal places; all intermediate math runs on
// decimals so repeated credits and debits never accumulate binary error.
package money

import "github.com/shopspring/decimal"

// FromFloat converts a persisted amount into a decimal for arithmetic.
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ToFloat converts a decimal back to the persisted float64 form, rounded to
// 2 decimal places.
func ToFloat(d decimal.Decimal) float64 {
	f, _ := Round2(d).Float64()
	return f
}

// Round normalizes a float64 amount to the persisted 2 decimal places.
func Round(v float64) float64 {
	return ToFloat(FromFloat(v))
}

// Add returns a + b rounded to 2 decimal places.
func Add(a, b float64) float64 {
	return ToFloat(FromFloat(a).Add(FromFloat(b)))
}

// Sub returns a - b rounded to 2 decimal places.
func Sub(a, b float64) float64 {
	return ToFloat(FromFloat(a).Sub(FromFloat(b)))
}

// Equal reports whether two persisted amounts agree at 2 decimal places.
func Equal(a, b float64) bool {
	return Round2(FromFloat(a)).Equal(Round2(FromFloat(b)))
}

// Less reports whether a < b at 2 decimal places.
func Less(a, b float64) bool {
	return Round2(FromFloat(a)).LessThan(Round2(FromFloat(b)))
}
