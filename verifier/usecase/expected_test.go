package usecase_test

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/sqs-verifier/domain"
	"github.com/osmosis-labs/sqs-verifier/verifier/usecase"
)

// TestComputeExpectedValue verifies the expected unit price, counter amount
// and notional for the default fixture: UOSMO at $1 into UION at $2, both
// with exponent 6.
func (s *VerifierTestSuite) TestComputeExpectedValue() {
	refData := newRefDataMock()

	expected, err := usecase.ComputeExpectedValue(refData, exactInRequest(UOSMO, UION))
	s.Require().NoError(err)

	s.Require().True(expected.UnitPrice.Equal(osmomath.MustNewBigDecFromStr("0.5")))
	s.Require().True(expected.CounterAmount.Equal(osmomath.MustNewBigDecFromStr("500000")))
	s.Require().True(expected.ScalingFactor.Equal(osmomath.OneBigDec()))
	s.Require().True(expected.NotionalUSD.Equal(osmomath.OneBigDec()))
}

// TestComputeExpectedValue_Reciprocal verifies the unit price flips when
// the request direction flips.
func (s *VerifierTestSuite) TestComputeExpectedValue_Reciprocal() {
	refData := newRefDataMock()

	forward, err := usecase.ComputeExpectedValue(refData, exactInRequest(UOSMO, UION))
	s.Require().NoError(err)

	backward, err := usecase.ComputeExpectedValue(refData, exactInRequest(UION, UOSMO))
	s.Require().NoError(err)

	product := forward.UnitPrice.Mul(backward.UnitPrice)
	s.Require().True(product.Equal(osmomath.OneBigDec()), product.String())
}

// TestComputeExpectedValue_ExponentMismatch verifies the scaling factor for
// tokens with different on-chain precisions.
func (s *VerifierTestSuite) TestComputeExpectedValue_ExponentMismatch() {
	const weth = "ibc/weth"

	refData := newRefDataMock()
	refData.Denoms[weth] = domain.DenomMetadata{
		Denom:    weth,
		Exponent: 18,
		PriceUSD: bigDecPtr("2000"),
	}

	expected, err := usecase.ComputeExpectedValue(refData, exactInRequest(weth, UOSMO))
	s.Require().NoError(err)

	// 10^18 / 10^6.
	s.Require().True(expected.ScalingFactor.Equal(osmomath.NewBigDec(10).PowerInteger(12)))
	s.Require().True(expected.UnitPrice.Equal(osmomath.MustNewBigDecFromStr("2000")))
}

// TestComputeExpectedValue_Missing verifies unknown and unpriced denoms
// both surface as MissingReferenceDataError.
func (s *VerifierTestSuite) TestComputeExpectedValue_Missing() {
	refData := newRefDataMock()
	refData.Denoms["unpriced"] = domain.DenomMetadata{Denom: "unpriced", Exponent: 6}

	_, err := usecase.ComputeExpectedValue(refData, exactInRequest(UFOO, UION))
	s.Require().Error(err)
	s.Require().ErrorAs(err, &domain.MissingReferenceDataError{})

	_, err = usecase.ComputeExpectedValue(refData, exactInRequest("unpriced", UION))
	s.Require().Error(err)
	s.Require().ErrorAs(err, &domain.MissingReferenceDataError{})
}
