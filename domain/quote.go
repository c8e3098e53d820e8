package domain

import (
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// TokenSwapMethod is the type of the swap a quote was requested for.
type TokenSwapMethod int

const (
	// TokenSwapMethodExactIn fixes the input amount;
	// the router computes the output.
	TokenSwapMethodExactIn TokenSwapMethod = iota
	// TokenSwapMethodExactOut fixes the output amount;
	// the router computes the input.
	TokenSwapMethodExactOut
	// TokenSwapMethodInvalid represents an invalid swap method.
	TokenSwapMethodInvalid
)

// QuoteRequest represents the original request parameters a quote was
// obtained with. The specified coin is the token in for exact in quotes and
// the token out for exact out quotes.
type QuoteRequest struct {
	// Method is the swap method of the request.
	Method TokenSwapMethod
	// Specified is the coin whose amount was fixed by the request.
	Specified sdk.Coin
	// CounterDenom is the denom of the token on the other side of the swap.
	CounterDenom string
	// PoolIDs is the explicit ordered pool id list for custom direct quotes.
	// Empty for regular quotes.
	PoolIDs []uint64
}

// IsDirect returns true if the request pinned an explicit pool sequence
// (custom direct quote).
func (r QuoteRequest) IsDirect() bool {
	return len(r.PoolIDs) > 0
}

// DenomIn returns the request's input denom.
func (r QuoteRequest) DenomIn() string {
	if r.Method == TokenSwapMethodExactOut {
		return r.CounterDenom
	}
	return r.Specified.Denom
}

// DenomOut returns the request's output denom.
func (r QuoteRequest) DenomOut() string {
	if r.Method == TokenSwapMethodExactOut {
		return r.Specified.Denom
	}
	return r.CounterDenom
}

// RoutePool represents a single hop of a quoted route.
type RoutePool struct {
	ID            uint64       `json:"id"`
	Type          int          `json:"type"`
	SpreadFactor  osmomath.Dec `json:"spread_factor"`
	TokenInDenom  string       `json:"token_in_denom,omitempty"`
	TokenOutDenom string       `json:"token_out_denom,omitempty"`
	TakerFee      osmomath.Dec `json:"taker_fee"`
	CodeID        uint64       `json:"code_id,omitempty"`
}

// Route represents a single route within a quote, carrying its own
// sub-amounts when the quote was split across routes.
type Route struct {
	Pools     []RoutePool  `json:"pools"`
	InAmount  osmomath.Int `json:"in_amount"`
	OutAmount osmomath.Int `json:"out_amount"`
}

// QuoteExactAmountInResponse represents the response format of the
// /router/quote endpoint for exact amount in quotes.
type QuoteExactAmountInResponse struct {
	AmountIn                sdk.Coin     `json:"amount_in"`
	AmountOut               osmomath.Int `json:"amount_out"`
	Route                   []Route      `json:"route"`
	EffectiveFee            osmomath.Dec `json:"effective_fee"`
	PriceImpact             osmomath.Dec `json:"price_impact"`
	InBaseOutQuoteSpotPrice osmomath.Dec `json:"in_base_out_quote_spot_price"`
}

// QuoteExactAmountOutResponse represents the response format of the
// /router/quote endpoint for exact amount out quotes.
type QuoteExactAmountOutResponse struct {
	AmountIn                osmomath.Int `json:"amount_in"`
	AmountOut               sdk.Coin     `json:"amount_out"`
	Route                   []Route      `json:"route"`
	EffectiveFee            osmomath.Dec `json:"effective_fee"`
	PriceImpact             osmomath.Dec `json:"price_impact"`
	InBaseOutQuoteSpotPrice osmomath.Dec `json:"in_base_out_quote_spot_price"`
}

// QuoteResult is the normalized quote consumed by the verifier.
// Both swap methods resolve to fully-populated token in and token out coins.
type QuoteResult struct {
	// TokenIn is the input coin, echoed for exact in, computed for exact out.
	TokenIn sdk.Coin
	// TokenOut is the output coin, computed for exact in, echoed for exact out.
	TokenOut sdk.Coin
	// Routes are the quoted routes with per-route sub-amounts.
	Routes []Route
	// EffectiveFee is the effective fee reported for the quote.
	EffectiveFee osmomath.Dec
	// PriceImpact is the realized price impact. By convention it is <= 0,
	// and exactly 0 only for zero-slippage routes.
	PriceImpact osmomath.Dec
	// SpotPrice is the reported spot price, base-in/quote-out convention,
	// in raw integer units.
	SpotPrice osmomath.Dec
}

// Result converts the exact in response to the normalized quote result.
func (r QuoteExactAmountInResponse) Result() QuoteResult {
	tokenOutDenom := ""
	if len(r.Route) > 0 && len(r.Route[len(r.Route)-1].Pools) > 0 {
		lastPools := r.Route[len(r.Route)-1].Pools
		tokenOutDenom = lastPools[len(lastPools)-1].TokenOutDenom
	}

	return QuoteResult{
		TokenIn:      r.AmountIn,
		TokenOut:     sdk.Coin{Denom: tokenOutDenom, Amount: r.AmountOut},
		Routes:       r.Route,
		EffectiveFee: r.EffectiveFee,
		PriceImpact:  r.PriceImpact,
		SpotPrice:    r.InBaseOutQuoteSpotPrice,
	}
}

// Result converts the exact out response to the normalized quote result.
func (r QuoteExactAmountOutResponse) Result() QuoteResult {
	tokenInDenom := ""
	if len(r.Route) > 0 && len(r.Route[len(r.Route)-1].Pools) > 0 {
		lastPools := r.Route[len(r.Route)-1].Pools
		tokenInDenom = lastPools[len(lastPools)-1].TokenInDenom
	}

	return QuoteResult{
		TokenIn:      sdk.Coin{Denom: tokenInDenom, Amount: r.AmountIn},
		TokenOut:     r.AmountOut,
		Routes:       r.Route,
		EffectiveFee: r.EffectiveFee,
		PriceImpact:  r.PriceImpact,
		SpotPrice:    r.InBaseOutQuoteSpotPrice,
	}
}

// PoolIDs returns the ordered pool id sequence across all routes of the quote.
func (q QuoteResult) PoolIDs() []uint64 {
	var poolIDs []uint64
	for _, route := range q.Routes {
		for _, pool := range route.Pools {
			poolIDs = append(poolIDs, pool.ID)
		}
	}
	return poolIDs
}

// TokenOutDenoms returns the ordered per-hop token out denom sequence
// across all routes of the quote.
func (q QuoteResult) TokenOutDenoms() []string {
	var denoms []string
	for _, route := range q.Routes {
		for _, pool := range route.Pools {
			denoms = append(denoms, pool.TokenOutDenom)
		}
	}
	return denoms
}

// PoolIDsString returns the quote's pool id sequence as a comma-separated
// string as expected by the custom direct quote endpoint.
func (q QuoteResult) PoolIDsString() string {
	ids := q.PoolIDs()
	strs := make([]string, 0, len(ids))
	for _, id := range ids {
		strs = append(strs, strconv.FormatUint(id, 10))
	}
	return strings.Join(strs, ",")
}

// CandidatePool is a single hop of a candidate route as returned by the
// /router/routes endpoint.
type CandidatePool struct {
	ID            uint64 `json:"ID"`
	TokenOutDenom string `json:"TokenOutDenom"`
}

// CandidateRoute is a single candidate route.
type CandidateRoute struct {
	Pools []CandidatePool `json:"Pools"`
}

// CandidateRoutes is the response format of the /router/routes endpoint.
type CandidateRoutes struct {
	Routes        []CandidateRoute    `json:"Routes"`
	UniquePoolIDs map[string]struct{} `json:"UniquePoolIDs"`
}
