package money

import "math"

// Round2 rounds an amount to two decimal places using round-half-away-from-zero
// on the cent boundary (12.345 -> 12.35, -12.345 -> -12.35).
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
