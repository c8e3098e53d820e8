// Package randutil generates deterministic pseudo-random swap amounts for
// verification sweeps.
package randutil

import (
	"math/big"
	"math/rand"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// AmountsPerOrder returns one random amount within each order of magnitude
// from 10^startOrder up to 10^(endOrder+1)-1. The same seed always yields the
// same amounts so a failing sweep can be replayed.
func AmountsPerOrder(seed int64, startOrder, endOrder int) []osmomath.Int {
	rng := rand.New(rand.NewSource(seed))

	amounts := make([]osmomath.Int, 0, endOrder-startOrder+1)
	for order := startOrder; order <= endOrder; order++ {
		lower := pow10(order)
		upper := pow10(order + 1)

		// Uniform in [10^order, 10^(order+1)-1].
		span := new(big.Int).Sub(upper, lower)
		offset := new(big.Int).Rand(rng, span)

		amounts = append(amounts, osmomath.NewIntFromBigInt(new(big.Int).Add(lower, offset)))
	}

	return amounts
}

func pow10(order int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(order)), nil)
}
