package usecase

import (
	"github.com/osmosis-labs/sqs-verifier/domain"
)

// VerifyCandidateRoutes implements mvc.QuoteVerifier.
//
// Validates the candidate routes returned by the router for the given
// denom pair: the route count bounds, per-hop pool membership, denom
// continuity across hops and the final denom equality. Equal denoms in and
// out must yield no routes.
func (v *verifierUsecase) VerifyCandidateRoutes(denomIn, denomOut string, routes domain.CandidateRoutes, expectedMinRoutes, expectedMaxRoutes int) domain.Verdict {
	var verdict domain.Verdict

	if denomIn == denomOut {
		if len(routes.Routes) != 0 {
			verdict.Failf(domain.CheckRouteStructure, "equal denoms in and out (%s) must have no candidate routes, got %d", denomIn, len(routes.Routes))
		}
		return verdict
	}

	if numRoutes := len(routes.Routes); numRoutes < expectedMinRoutes || numRoutes > expectedMaxRoutes {
		verdict.Failf(domain.CheckRouteCount, "found %d routes for denom in %s and denom out %s, expected between %d and %d", numRoutes, denomIn, denomOut, expectedMinRoutes, expectedMaxRoutes)
	}

	for routeIdx, route := range routes.Routes {
		if len(route.Pools) == 0 {
			verdict.Failf(domain.CheckRouteStructure, "candidate route %d has no pools", routeIdx)
			continue
		}

		current := denomIn
		for _, pool := range route.Pools {
			poolData, ok := v.refData.GetPool(pool.ID)
			if !ok {
				verdict.Failf(domain.CheckMissingReferenceData, "pool %d not found in reference data", pool.ID)
				current = pool.TokenOutDenom
				continue
			}

			if !isSyntheticDenom(current) && !poolData.HasDenom(current) {
				verdict.Failf(domain.CheckRouteStructure, "denom %s not found in pool %d denoms %v", current, pool.ID, poolData.Denoms)
			}

			current = pool.TokenOutDenom
		}

		if current != denomOut {
			verdict.Failf(domain.CheckRouteStructure, "candidate route %d last denom out %s does not match denom out %s", routeIdx, current, denomOut)
		}
	}

	return verdict
}

// HasRouteWithPools returns true if any candidate route consists of pools
// exactly as given per expectedPoolIDs, in order.
func HasRouteWithPools(routes domain.CandidateRoutes, expectedPoolIDs []uint64) bool {
	for _, route := range routes.Routes {
		if len(route.Pools) != len(expectedPoolIDs) {
			continue
		}

		matches := true
		for i, pool := range route.Pools {
			if pool.ID != expectedPoolIDs[i] {
				matches = false
				break
			}
		}

		if matches {
			return true
		}
	}

	return false
}
