package usecase

import (
	"github.com/osmosis-labs/osmosis/osmomath"
)

// RelativeError returns the relative error between two values:
// |a-b| / max(|a|, |b|). It is symmetric and scale invariant.
// Returns zero when both inputs are zero.
func RelativeError(a, b osmomath.BigDec) osmomath.BigDec {
	absA := a.Abs()
	absB := b.Abs()

	max := absA
	if absB.GT(max) {
		max = absB
	}

	if max.IsZero() {
		return osmomath.ZeroBigDec()
	}

	return a.Sub(b).Abs().Quo(max)
}
