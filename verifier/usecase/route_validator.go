package usecase

import (
	"strings"

	"github.com/osmosis-labs/sqs-verifier/domain"
	"github.com/osmosis-labs/sqs-verifier/domain/mvc"
)

// alloyedDenomMarker marks synthetic alloyed LP share denoms. Upstream
// reference data does not enumerate them within pool token sets, so such
// denoms are exempt from strict pool membership checks.
const alloyedDenomMarker = "alloyed"

func isSyntheticDenom(denom string) bool {
	return strings.Contains(denom, alloyedDenomMarker)
}

// routeHop is a single hop of a quoted route resolved to its denom pair in
// the input-to-output direction.
type routeHop struct {
	PoolID   uint64
	DenomIn  string
	DenomOut string
}

// resolveHops converts a quoted route to input-to-output directed hops.
// Exact in routes carry per-hop token out denoms and are recorded
// head-first. Exact out routes carry per-hop token in denoms and are
// recorded tail-first, so the chain walks from the output side.
func resolveHops(method domain.TokenSwapMethod, route domain.Route, denomIn, denomOut string) []routeHop {
	hops := make([]routeHop, len(route.Pools))

	if method == domain.TokenSwapMethodExactOut {
		current := denomOut
		for i, pool := range route.Pools {
			// Walking towards the input side, then flipping into the
			// canonical direction.
			hops[len(route.Pools)-1-i] = routeHop{
				PoolID:   pool.ID,
				DenomIn:  pool.TokenInDenom,
				DenomOut: current,
			}
			current = pool.TokenInDenom
		}
		return hops
	}

	current := denomIn
	for i, pool := range route.Pools {
		hops[i] = routeHop{
			PoolID:   pool.ID,
			DenomIn:  current,
			DenomOut: pool.TokenOutDenom,
		}
		current = pool.TokenOutDenom
	}
	return hops
}

// ValidateRoutes validates the structure of the quoted routes:
// per-hop pool membership of the hop denoms, denom continuity across hops,
// and endpoint equality against the request denoms. For direct quotes the
// per-route endpoint checks are skipped; the quote's combined endpoints are
// checked once instead since direct quotes fix pools explicitly.
//
// The second return value reports whether the quote is presumed zero
// slippage: a single route with a single hop through a zero-slippage pool.
func ValidateRoutes(refData mvc.ReferenceData, request domain.QuoteRequest, quote domain.QuoteResult) (domain.Verdict, bool) {
	var verdict domain.Verdict

	denomIn := request.DenomIn()
	denomOut := request.DenomOut()

	for routeIdx, route := range quote.Routes {
		if len(route.Pools) == 0 {
			verdict.Failf(domain.CheckRouteStructure, "route %d has no pools", routeIdx)
			continue
		}

		hops := resolveHops(request.Method, route, denomIn, denomOut)

		for _, hop := range hops {
			pool, ok := refData.GetPool(hop.PoolID)
			if !ok {
				verdict.Failf(domain.CheckMissingReferenceData, "pool %d not found in reference data", hop.PoolID)
				continue
			}

			for _, hopDenom := range []string{hop.DenomIn, hop.DenomOut} {
				if hopDenom == "" {
					verdict.Failf(domain.CheckRouteStructure, "pool %d has an empty hop denom", hop.PoolID)
					continue
				}

				if !isSyntheticDenom(hopDenom) && !pool.HasDenom(hopDenom) {
					verdict.Failf(domain.CheckRouteStructure, "denom %s not found in pool %d denoms %v", hopDenom, hop.PoolID, pool.Denoms)
				}
			}
		}

		if request.IsDirect() || len(hops) == 0 {
			continue
		}

		// Endpoint equality. Continuity across hops is implied by the
		// chained construction of the hop denoms.
		if first := hops[0].DenomIn; first != denomIn {
			verdict.Failf(domain.CheckRouteStructure, "route %d first denom in %s does not match request denom in %s", routeIdx, first, denomIn)
		}
		if last := hops[len(hops)-1].DenomOut; last != denomOut {
			verdict.Failf(domain.CheckRouteStructure, "route %d last denom out %s does not match request denom out %s", routeIdx, last, denomOut)
		}
	}

	if request.IsDirect() {
		// Direct quotes fix pools and may reorder internally; only the
		// combined endpoints of the overall quote are checked.
		if quote.TokenIn.Denom != denomIn {
			verdict.Failf(domain.CheckRouteStructure, "quote token in denom %s does not match request denom in %s", quote.TokenIn.Denom, denomIn)
		}
		if quote.TokenOut.Denom != denomOut {
			verdict.Failf(domain.CheckRouteStructure, "quote token out denom %s does not match request denom out %s", quote.TokenOut.Denom, denomOut)
		}
	}

	return verdict, isZeroSlippageRoute(refData, quote.Routes)
}

// isZeroSlippageRoute returns true if there is a single route with exactly
// one hop and that hop's pool is of a zero-slippage type.
func isZeroSlippageRoute(refData mvc.ReferenceData, routes []domain.Route) bool {
	if len(routes) != 1 || len(routes[0].Pools) != 1 {
		return false
	}

	pool, ok := refData.GetPool(routes[0].Pools[0].ID)
	if !ok {
		return false
	}

	return pool.Type.IsZeroSlippage()
}
