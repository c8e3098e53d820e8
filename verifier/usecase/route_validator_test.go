package usecase_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/sqs-verifier/domain"
	"github.com/osmosis-labs/sqs-verifier/verifier/usecase"
)

// TestValidateRoutes verifies hop membership, endpoint equality and the
// zero-slippage detection over single- and multi-hop quotes.
func (s *VerifierTestSuite) TestValidateRoutes() {
	refData := newRefDataMock()

	tests := []struct {
		name string

		request domain.QuoteRequest
		quote   domain.QuoteResult

		expectedChecks       []domain.Check
		expectedZeroSlippage bool
	}{
		{
			name:    "valid single hop",
			request: exactInRequest(UOSMO, UION),
			quote:   balancerQuote(495_000, "0.495", "-0.01", "0.002"),
		},
		{
			name:    "valid two hop through the transmuter",
			request: exactInRequest(UION, USDC),
			quote: domain.QuoteResult{
				TokenIn:  sdk.NewCoin(UION, defaultAmountIn),
				TokenOut: sdk.NewCoin(USDC, osmomath.NewInt(2_000_000)),
				Routes: []domain.Route{
					{
						Pools: []domain.RoutePool{
							{ID: poolIDBalancer, TokenOutDenom: UOSMO},
							{ID: poolIDTransmuter, TokenOutDenom: USDC},
						},
					},
				},
			},
			// Two hops, so the transmuter hop alone does not make the
			// route zero slippage.
			expectedZeroSlippage: false,
		},
		{
			name:    "single transmuter hop is zero slippage",
			request: exactInRequest(UOSMO, USDC),
			quote: domain.QuoteResult{
				TokenIn:  sdk.NewCoin(UOSMO, defaultAmountIn),
				TokenOut: sdk.NewCoin(USDC, defaultAmountIn),
				Routes: []domain.Route{
					{
						Pools: []domain.RoutePool{
							{ID: poolIDTransmuter, TokenOutDenom: USDC},
						},
					},
				},
			},
			expectedZeroSlippage: true,
		},
		{
			name:    "hop denom not in pool",
			request: exactInRequest(UOSMO, USDC),
			quote: domain.QuoteResult{
				TokenIn:  sdk.NewCoin(UOSMO, defaultAmountIn),
				TokenOut: sdk.NewCoin(USDC, defaultAmountIn),
				Routes: []domain.Route{
					{
						Pools: []domain.RoutePool{
							// The balancer pool holds no USDC.
							{ID: poolIDBalancer, TokenOutDenom: USDC},
						},
					},
				},
			},
			expectedChecks: []domain.Check{domain.CheckRouteStructure},
		},
		{
			name:    "unknown pool id",
			request: exactInRequest(UOSMO, UION),
			quote: domain.QuoteResult{
				TokenIn:  sdk.NewCoin(UOSMO, defaultAmountIn),
				TokenOut: sdk.NewCoin(UION, defaultAmountIn),
				Routes: []domain.Route{
					{
						Pools: []domain.RoutePool{
							{ID: 999, TokenOutDenom: UION},
						},
					},
				},
			},
			expectedChecks: []domain.Check{domain.CheckMissingReferenceData},
		},
		{
			name:    "last hop does not reach the requested denom out",
			request: exactInRequest(UION, USDC),
			quote: domain.QuoteResult{
				TokenIn:  sdk.NewCoin(UION, defaultAmountIn),
				TokenOut: sdk.NewCoin(UOSMO, defaultAmountIn),
				Routes: []domain.Route{
					{
						Pools: []domain.RoutePool{
							{ID: poolIDBalancer, TokenOutDenom: UOSMO},
						},
					},
				},
			},
			expectedChecks: []domain.Check{domain.CheckRouteStructure},
		},
		{
			name:    "route with no pools",
			request: exactInRequest(UOSMO, UION),
			quote: domain.QuoteResult{
				TokenIn:  sdk.NewCoin(UOSMO, defaultAmountIn),
				TokenOut: sdk.NewCoin(UION, defaultAmountIn),
				Routes:   []domain.Route{{}},
			},
			expectedChecks: []domain.Check{domain.CheckRouteStructure},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			verdict, isZeroSlippage := usecase.ValidateRoutes(refData, tc.request, tc.quote)

			s.Require().Equal(tc.expectedZeroSlippage, isZeroSlippage)

			s.Require().Len(verdict.Failures, len(tc.expectedChecks), verdict.String())
			for i, check := range tc.expectedChecks {
				s.Require().Equal(check, verdict.Failures[i].Check)
			}
		})
	}
}

// TestValidateRoutes_ExactOut verifies the tail-first hop resolution of
// exact out routes: pools carry token in denoms and the walk starts from
// the output side.
func (s *VerifierTestSuite) TestValidateRoutes_ExactOut() {
	refData := newRefDataMock()

	request := domain.QuoteRequest{
		Method:       domain.TokenSwapMethodExactOut,
		Specified:    sdk.NewCoin(USDC, defaultAmountIn),
		CounterDenom: UION,
	}

	// UION -> UOSMO -> USDC quoted from the out side.
	quote := domain.QuoteResult{
		TokenIn:  sdk.NewCoin(UION, defaultAmountIn),
		TokenOut: sdk.NewCoin(USDC, defaultAmountIn),
		Routes: []domain.Route{
			{
				Pools: []domain.RoutePool{
					{ID: poolIDTransmuter, TokenInDenom: UOSMO},
					{ID: poolIDBalancer, TokenInDenom: UION},
				},
			},
		},
	}

	verdict, isZeroSlippage := usecase.ValidateRoutes(refData, request, quote)

	s.Require().True(verdict.Pass(), verdict.String())
	s.Require().False(isZeroSlippage)
}

// TestValidateRoutes_SyntheticDenomExempt verifies denoms carrying the
// alloyed marker are exempt from pool membership checks.
func (s *VerifierTestSuite) TestValidateRoutes_SyntheticDenomExempt() {
	const alloyedDenom = "factory/osmo1/alloyed/allBTC"

	refData := newRefDataMock()

	request := exactInRequest(UOSMO, alloyedDenom)

	quote := domain.QuoteResult{
		TokenIn:  sdk.NewCoin(UOSMO, defaultAmountIn),
		TokenOut: sdk.NewCoin(alloyedDenom, defaultAmountIn),
		Routes: []domain.Route{
			{
				Pools: []domain.RoutePool{
					{ID: poolIDBalancer, TokenOutDenom: alloyedDenom},
				},
			},
		},
	}

	verdict, _ := usecase.ValidateRoutes(refData, request, quote)

	s.Require().True(verdict.Pass(), verdict.String())
}

// TestValidateRoutes_Direct verifies direct quotes skip per-route endpoint
// checks but still validate the combined quote endpoints.
func (s *VerifierTestSuite) TestValidateRoutes_Direct() {
	refData := newRefDataMock()

	request := domain.QuoteRequest{
		Method:       domain.TokenSwapMethodExactIn,
		Specified:    sdk.NewCoin(UOSMO, defaultAmountIn),
		CounterDenom: UION,
		PoolIDs:      []uint64{poolIDBalancer},
	}

	quote := balancerQuote(495_000, "0.495", "-0.01", "0.002")

	verdict, _ := usecase.ValidateRoutes(refData, request, quote)
	s.Require().True(verdict.Pass(), verdict.String())

	// A mismatching combined token out denom still fails.
	quote.TokenOut = sdk.NewCoin(USDC, osmomath.NewInt(495_000))

	verdict, _ = usecase.ValidateRoutes(refData, request, quote)
	s.Require().False(verdict.Pass())
}
