package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RoundCents rounds amount to two decimals, half away from zero.
func RoundCents(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// CalculateCreditCardFee returns percent of amount rounded to the cent.
// The multiplication happens in decimal so 58.50 at 5% is 2.93, not 2.92.
func CalculateCreditCardFee(amount, percent float64) float64 {
	fee := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(percent)).
		Div(hundred).
		Round(2)
	return fee.InexactFloat64()
}

// FormatAmount renders amount with exactly two decimals.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// ParseAmount reads an amount written by FormatAmount (or any decimal
// string) and rounds it to the cent.
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d.Round(2).InexactFloat64(), nil
}
