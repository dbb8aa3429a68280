package codeset

import "math"

// ClaimTotalsBalance reports whether claimTotal is within tolerance of
// the sum of lineItems, the 837 cross-segment check comparing CLM02
// against the sum of each service line's SV1/SV2-adjacent charge
// amount. tolerance is an absolute currency amount (e.g. 0.02 for two
// cents), accommodating the rounding a partner's submission system
// may introduce.
func ClaimTotalsBalance(claimTotal float64, lineItems []float64, tolerance float64) bool {
	sum := 0.0
	for _, v := range lineItems {
		sum += v
	}
	return math.Abs(claimTotal-sum) <= tolerance
}
