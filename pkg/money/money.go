package money

import "github.com/shopspring/decimal"

// Round normalizes a currency amount to 2 decimal places, rounding half
// away from zero at the cent. Every monetary figure that enters or leaves
// the budget ledger goes through here so repeated deltas cannot drift.
func Round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Total returns the rounded budget footprint of qty units at unitCost each.
func Total(unitCost float64, qty int) float64 {
	return decimal.NewFromFloat(unitCost).
		Mul(decimal.NewFromInt(int64(qty))).
		Round(2).
		InexactFloat64()
}
