package response

import "math"

// Round2 rounds a currency amount to cents. Stored amounts keep full
// precision; this runs only at the response boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
