package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/sqs-verifier/domain"
	"github.com/osmosis-labs/sqs-verifier/domain/mvc"
	"github.com/osmosis-labs/sqs-verifier/log"
)

var (
	// Zero-slippage pools quote an exact rate, so only reference-data noise
	// remains. Arbitrarily hand-picked to avoid flakiness.
	zeroSlippageErrorTolerance = osmomath.MustNewDecFromStr("0.05")

	// The max USD notional at which the price impact magnitude check runs.
	// Above it, large swaps legitimately move the price. The choice is
	// arbitrary and was made based on testing at the time of creation.
	highLiqNotionalThresholdUSD = osmomath.MustNewBigDecFromStr("5000")

	// The max price impact magnitude allowed below the notional threshold.
	highLiqMaxPriceImpact = osmomath.MustNewDecFromStr("0.5")

	checkFailureCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: domain.SQSVerifierCheckFailureMetricName,
			Help: "Total number of failed verification checks",
		},
		[]string{"check"},
	)

	quoteVerifiedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: domain.SQSVerifierQuoteVerifiedMetricName,
			Help: "Total number of verified quotes",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(checkFailureCounter)
	prometheus.MustRegister(quoteVerifiedCounter)
}

type verifierUsecase struct {
	refData   mvc.ReferenceData
	feeSource mvc.FeeSource
	logger    log.Logger
}

var _ mvc.QuoteVerifier = &verifierUsecase{}

// NewVerifierUsecase creates a new quote verifier over the given reference
// data snapshot and fee source. The returned verifier is stateless per call
// and safe for concurrent use.
func NewVerifierUsecase(refData mvc.ReferenceData, feeSource mvc.FeeSource, logger log.Logger) mvc.QuoteVerifier {
	return &verifierUsecase{
		refData:   refData,
		feeSource: feeSource,
		logger:    logger,
	}
}

// Verify implements mvc.QuoteVerifier.
//
// The checks proceed strictly sequentially:
// expected value computation, tolerance selection, route structure, price
// impact invariants, spot price and counter amount comparison, fee
// validation. Failed preconditions (missing reference data, malformed
// quote) short-circuit; value comparison failures accumulate so a single
// call reports all numeric violations at once.
func (v *verifierUsecase) Verify(request domain.QuoteRequest, quote domain.QuoteResult) domain.Verdict {
	var verdict domain.Verdict

	expected, err := ComputeExpectedValue(v.refData, request)
	if err != nil {
		verdict.Failf(domain.CheckMissingReferenceData, "%s", err)
		return v.finalize(request, verdict)
	}

	if len(quote.Routes) == 0 {
		verdict.Failf(domain.CheckRouteStructure, "no routes in quote")
		return v.finalize(request, verdict)
	}

	// The tolerance is selected from the specified amount, not the computed
	// one, to avoid circularity.
	tolerance := ChooseErrorTolerance(request.Specified.Amount)

	// The router must echo the specified coin.
	echoed := quote.TokenIn
	if request.Method == domain.TokenSwapMethodExactOut {
		echoed = quote.TokenOut
	}
	if echoed.Denom != request.Specified.Denom || !echoed.Amount.Equal(request.Specified.Amount) {
		verdict.Failf(domain.CheckRouteStructure, "specified coin %s not echoed in quote, got %s", request.Specified, echoed)
	}

	routeVerdict, isZeroSlippage := ValidateRoutes(v.refData, request, quote)
	verdict.Merge(routeVerdict)

	// Price impact sign invariant: exactly zero iff the route is zero
	// slippage, strictly negative otherwise.
	if isZeroSlippage {
		if !quote.PriceImpact.IsZero() {
			verdict.Failf(domain.CheckPriceImpactSign, "price impact %s is not zero for a zero-slippage route", quote.PriceImpact)
		}
	} else if !quote.PriceImpact.IsNegative() {
		verdict.Failf(domain.CheckPriceImpactSign, "price impact %s is not negative", quote.PriceImpact)
	}

	priceImpactAbs := quote.PriceImpact.Abs()

	// Small trades against high liquidity must not move the price much.
	if expected.NotionalUSD.LT(highLiqNotionalThresholdUSD) && priceImpactAbs.GT(highLiqMaxPriceImpact) {
		verdict.Failf(domain.CheckPriceImpactThreshold, "price impact %s exceeds %s for a %s USD notional", quote.PriceImpact, highLiqMaxPriceImpact, expected.NotionalUSD)
	}

	// Zero-slippage routes quote an exact rate: a fixed tolerance applies
	// and the price impact widening is skipped.
	amountTolerance := tolerance
	if isZeroSlippage {
		tolerance = zeroSlippageErrorTolerance
		amountTolerance = zeroSlippageErrorTolerance
	} else {
		amountTolerance = AdjustForPriceImpact(tolerance, priceImpactAbs)
	}

	// Spot price comparison. The reported spot price is base-in/quote-out
	// in raw integer units; rescale it rather than the reference price.
	// A non-positive spot cannot be compared (nor reciprocated for exact
	// out), so only the comparison is skipped and the remaining checks
	// still run.
	reportedSpot := osmomath.BigDecFromDec(quote.SpotPrice)
	if !reportedSpot.IsPositive() {
		verdict.Failf(domain.CheckToleranceExceeded, "reported spot price %s is not positive", quote.SpotPrice)
	} else {
		if request.Method == domain.TokenSwapMethodExactOut {
			// The expectation is oriented from the specified (out) side.
			reportedSpot = osmomath.OneBigDec().Quo(reportedSpot)
		}
		scaledSpot := reportedSpot.Mul(expected.ScalingFactor)

		if spotError := RelativeError(scaledSpot, expected.UnitPrice); spotError.GTE(osmomath.BigDecFromDec(tolerance)) {
			verdict.Failf(domain.CheckToleranceExceeded, "spot price %s is not within %s of expected %s (relative error %s)", scaledSpot, tolerance, expected.UnitPrice, spotError)
		}
	}

	// Counter amount comparison with the widened tolerance.
	counterAmount := quote.TokenOut.Amount
	if request.Method == domain.TokenSwapMethodExactOut {
		counterAmount = quote.TokenIn.Amount
	}

	scaledCounter := osmomath.BigDecFromSDKInt(counterAmount).Mul(expected.ScalingFactor)
	if amountError := RelativeError(scaledCounter, expected.CounterAmount); amountError.GTE(osmomath.BigDecFromDec(amountTolerance)) {
		verdict.Failf(domain.CheckToleranceExceeded, "counter amount %s is not within %s of expected %s (relative error %s)", scaledCounter, amountTolerance, expected.CounterAmount, amountError)
	}

	verdict.Merge(ValidateFee(v.refData, v.feeSource, request, quote))

	return v.finalize(request, verdict)
}

func (v *verifierUsecase) finalize(request domain.QuoteRequest, verdict domain.Verdict) domain.Verdict {
	result := "pass"
	if !verdict.Pass() {
		result = "fail"

		for _, failure := range verdict.Failures {
			checkFailureCounter.WithLabelValues(string(failure.Check)).Inc()
		}

		v.logger.Info("quote verification failed",
			zap.String("specified", request.Specified.String()),
			zap.String("counter_denom", request.CounterDenom),
			zap.Stringer("verdict", verdict),
		)
	}

	quoteVerifiedCounter.WithLabelValues(result).Inc()

	return verdict
}
