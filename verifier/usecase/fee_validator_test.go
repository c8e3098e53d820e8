package usecase_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/sqs-verifier/domain"
	"github.com/osmosis-labs/sqs-verifier/domain/mocks"
	"github.com/osmosis-labs/sqs-verifier/verifier/usecase"
)

// transmuterQuote builds a single-hop quote through the zero-fee transmuter
// pool with the given effective fee.
func transmuterQuote(effectiveFee string) domain.QuoteResult {
	return domain.QuoteResult{
		TokenIn:      sdk.NewCoin(UOSMO, defaultAmountIn),
		TokenOut:     sdk.NewCoin(USDC, defaultAmountIn),
		EffectiveFee: osmomath.MustNewDecFromStr(effectiveFee),
		Routes: []domain.Route{
			{
				Pools: []domain.RoutePool{
					{ID: poolIDTransmuter, TokenOutDenom: USDC},
				},
			},
		},
	}
}

// TestValidateFee_PositiveFeeAccepted verifies a positive effective fee
// passes without consulting the fee source.
func (s *VerifierTestSuite) TestValidateFee_PositiveFeeAccepted() {
	feeSource := &mocks.FeeSourceMock{
		GetTradingPairTakerFeeFunc: func(denom0, denom1 string) (osmomath.Dec, error) {
			s.FailNow("fee source must not be consulted for a positive fee")
			return osmomath.Dec{}, nil
		},
	}

	quote := balancerQuote(495_000, "0.495", "-0.01", "0.002")

	verdict := usecase.ValidateFee(newRefDataMock(), feeSource, exactInRequest(UOSMO, UION), quote)

	s.Require().True(verdict.Pass(), verdict.String())
}

// TestValidateFee_NegativeFee verifies a negative effective fee fails
// immediately.
func (s *VerifierTestSuite) TestValidateFee_NegativeFee() {
	quote := balancerQuote(495_000, "0.495", "-0.01", "-0.002")

	verdict := usecase.ValidateFee(newRefDataMock(), &mocks.FeeSourceMock{}, exactInRequest(UOSMO, UION), quote)

	s.Require().False(verdict.Pass())
	s.Require().Len(verdict.Failures, 1)
	s.Require().Equal(domain.CheckUnexpectedZeroFee, verdict.Failures[0].Check)
}

// TestValidateFee_ZeroFeeCorroborated verifies a zero fee through a pool
// with neither swap fee nor taker fee passes.
func (s *VerifierTestSuite) TestValidateFee_ZeroFeeCorroborated() {
	verdict := usecase.ValidateFee(newRefDataMock(), &mocks.FeeSourceMock{}, exactInRequest(UOSMO, USDC), transmuterQuote("0"))

	s.Require().True(verdict.Pass(), verdict.String())
}

// TestValidateFee_ZeroFeeWithSwapFee verifies a zero fee claim through a
// pool charging a swap fee is flagged.
func (s *VerifierTestSuite) TestValidateFee_ZeroFeeWithSwapFee() {
	quote := balancerQuote(495_000, "0.495", "-0.01", "0")

	verdict := usecase.ValidateFee(newRefDataMock(), &mocks.FeeSourceMock{}, exactInRequest(UOSMO, UION), quote)

	s.Require().False(verdict.Pass())
	s.Require().Len(verdict.Failures, 1)
	s.Require().Equal(domain.CheckUnexpectedZeroFee, verdict.Failures[0].Check)
}

// TestValidateFee_ZeroFeeWithTakerFee verifies a zero fee claim over a pair
// with a nonzero independently sourced taker fee is flagged.
func (s *VerifierTestSuite) TestValidateFee_ZeroFeeWithTakerFee() {
	feeSource := &mocks.FeeSourceMock{
		GetTradingPairTakerFeeFunc: func(denom0, denom1 string) (osmomath.Dec, error) {
			return osmomath.MustNewDecFromStr("0.001"), nil
		},
	}

	verdict := usecase.ValidateFee(newRefDataMock(), feeSource, exactInRequest(UOSMO, USDC), transmuterQuote("0"))

	s.Require().False(verdict.Pass())
	s.Require().Len(verdict.Failures, 1)
	s.Require().Equal(domain.CheckUnexpectedZeroFee, verdict.Failures[0].Check)
}

// TestValidateFee_ZeroFeeTakerFeeUnavailable verifies an unavailable taker
// fee source surfaces as missing reference data rather than a silent pass.
func (s *VerifierTestSuite) TestValidateFee_ZeroFeeTakerFeeUnavailable() {
	feeSource := &mocks.FeeSourceMock{
		GetTradingPairTakerFeeFunc: func(denom0, denom1 string) (osmomath.Dec, error) {
			return osmomath.Dec{}, domain.TakerFeeNotFoundForDenomPairError{Denom0: denom0, Denom1: denom1}
		},
	}

	verdict := usecase.ValidateFee(newRefDataMock(), feeSource, exactInRequest(UOSMO, USDC), transmuterQuote("0"))

	s.Require().False(verdict.Pass())
	s.Require().Len(verdict.Failures, 1)
	s.Require().Equal(domain.CheckMissingReferenceData, verdict.Failures[0].Check)
}
