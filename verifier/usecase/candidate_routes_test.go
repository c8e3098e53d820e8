package usecase_test

import (
	"github.com/osmosis-labs/sqs-verifier/domain"
	"github.com/osmosis-labs/sqs-verifier/verifier/usecase"
)

func candidateRoute(hops ...domain.CandidatePool) domain.CandidateRoute {
	return domain.CandidateRoute{Pools: hops}
}

// TestVerifyCandidateRoutes covers the route count bounds, hop continuity
// and the equal-denom rule for the candidate routes endpoint.
func (s *VerifierTestSuite) TestVerifyCandidateRoutes() {
	verifier := newVerifier(newRefDataMock())

	validRoutes := domain.CandidateRoutes{
		Routes: []domain.CandidateRoute{
			candidateRoute(domain.CandidatePool{ID: poolIDBalancer, TokenOutDenom: UION}),
		},
	}

	tests := []struct {
		name string

		denomIn  string
		denomOut string
		routes   domain.CandidateRoutes

		expectedChecks []domain.Check
	}{
		{
			name:     "single valid route",
			denomIn:  UOSMO,
			denomOut: UION,
			routes:   validRoutes,
		},
		{
			name:     "two hop route",
			denomIn:  UION,
			denomOut: USDC,
			routes: domain.CandidateRoutes{
				Routes: []domain.CandidateRoute{
					candidateRoute(
						domain.CandidatePool{ID: poolIDBalancer, TokenOutDenom: UOSMO},
						domain.CandidatePool{ID: poolIDTransmuter, TokenOutDenom: USDC},
					),
				},
			},
		},
		{
			name:     "equal denoms must have no routes",
			denomIn:  UOSMO,
			denomOut: UOSMO,
			routes:   validRoutes,

			expectedChecks: []domain.Check{domain.CheckRouteStructure},
		},
		{
			name:     "equal denoms with no routes pass",
			denomIn:  UOSMO,
			denomOut: UOSMO,
			routes:   domain.CandidateRoutes{},
		},
		{
			name:     "no routes for distinct denoms is out of bounds",
			denomIn:  UOSMO,
			denomOut: UION,
			routes:   domain.CandidateRoutes{},

			expectedChecks: []domain.Check{domain.CheckRouteCount},
		},
		{
			name:     "hop denom not in pool",
			denomIn:  USDC,
			denomOut: UION,
			routes: domain.CandidateRoutes{
				Routes: []domain.CandidateRoute{
					// The balancer pool holds no USDC.
					candidateRoute(domain.CandidatePool{ID: poolIDBalancer, TokenOutDenom: UION}),
				},
			},

			expectedChecks: []domain.Check{domain.CheckRouteStructure},
		},
		{
			name:     "unknown pool and broken tail",
			denomIn:  UOSMO,
			denomOut: UION,
			routes: domain.CandidateRoutes{
				Routes: []domain.CandidateRoute{
					candidateRoute(domain.CandidatePool{ID: 999, TokenOutDenom: USDC}),
				},
			},

			expectedChecks: []domain.Check{domain.CheckMissingReferenceData, domain.CheckRouteStructure},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			verdict := verifier.VerifyCandidateRoutes(tc.denomIn, tc.denomOut, tc.routes, 1, 5)

			s.Require().Len(verdict.Failures, len(tc.expectedChecks), verdict.String())
			for i, check := range tc.expectedChecks {
				s.Require().Equal(check, verdict.Failures[i].Check)
			}
		})
	}
}

// TestHasRouteWithPools verifies exact ordered pool sequence matching.
func (s *VerifierTestSuite) TestHasRouteWithPools() {
	routes := domain.CandidateRoutes{
		Routes: []domain.CandidateRoute{
			candidateRoute(
				domain.CandidatePool{ID: 1, TokenOutDenom: UOSMO},
				domain.CandidatePool{ID: 2, TokenOutDenom: USDC},
			),
		},
	}

	s.Require().True(usecase.HasRouteWithPools(routes, []uint64{1, 2}))
	s.Require().False(usecase.HasRouteWithPools(routes, []uint64{2, 1}))
	s.Require().False(usecase.HasRouteWithPools(routes, []uint64{1}))
	s.Require().False(usecase.HasRouteWithPools(routes, []uint64{1, 2, 3}))
}
