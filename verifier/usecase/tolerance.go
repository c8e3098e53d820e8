package usecase

import (
	"github.com/osmosis-labs/osmosis/osmomath"
)

// toleranceBand maps an inclusive lower amount bound to an error tolerance.
type toleranceBand struct {
	lowerBound osmomath.Int
	tolerance  osmomath.Dec
}

var (
	// This is the max error tolerance of 7% that we allow by default.
	// Arbitrarily hand-picked to avoid flakiness.
	defaultErrorTolerance = osmomath.MustNewDecFromStr("0.07")

	// At a higher amount swapped, the volatility is much higher, leading to
	// flakiness. Therefore, we increase the error tolerance based on the
	// amount swapped. The values are arbitrarily hand-picked and can be
	// adjusted if necessary. This seems to be especially relevant for the
	// Astroport PCL pools. Bands are sorted by lower bound descending and
	// lower bounds are inclusive.
	toleranceBands = []toleranceBand{
		{lowerBound: osmomath.NewInt(60_000_000_000), tolerance: osmomath.MustNewDecFromStr("0.16")},
		{lowerBound: osmomath.NewInt(30_000_000_000), tolerance: osmomath.MustNewDecFromStr("0.13")},
		{lowerBound: osmomath.NewInt(10_000_000_000), tolerance: osmomath.MustNewDecFromStr("0.10")},
	}
)

// ChooseErrorTolerance returns the acceptable relative error for a quote
// given the raw integer amount specified in the request. The raw amount is
// a deliberate proxy for trade size since a true USD notional is not always
// available. Monotonically non-decreasing in the amount.
func ChooseErrorTolerance(amount osmomath.Int) osmomath.Dec {
	for _, band := range toleranceBands {
		if amount.GTE(band.lowerBound) {
			return band.tolerance
		}
	}

	return defaultErrorTolerance
}

// AdjustForPriceImpact widens the tolerance when the route's own realized
// price impact already exceeds the nominal bound. Price impact is a
// legitimate source of deviation, not noise, so the result is
// max(tolerance, priceImpactAbs * (1 + tolerance)).
func AdjustForPriceImpact(tolerance osmomath.Dec, priceImpactAbs osmomath.Dec) osmomath.Dec {
	widened := priceImpactAbs.Mul(osmomath.OneDec().Add(tolerance))
	if widened.GT(tolerance) {
		return widened
	}

	return tolerance
}
