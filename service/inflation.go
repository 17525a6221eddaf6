package service

import "math"

// AdjustForInflation expresses a nominal cost in today's money over the given
// horizon. Negative inflation (deflation) is permitted and raises the adjusted
// figure above the nominal one. No rounding happens here; results are rounded
// once, when stored into a TermResult.
func AdjustForInflation(nominalCost, annualInflationPercent, years float64) float64 {
	return nominalCost / math.Pow(1+annualInflationPercent/100, years)
}
