package usecase

import (
	"github.com/osmosis-labs/sqs-verifier/domain"
	"github.com/osmosis-labs/sqs-verifier/domain/mvc"
)

// ValidateFee validates the effective fee reported in a quote.
//
// A positive fee is accepted at face value. A claimed zero fee must be
// corroborated: every hop of every route is cross-checked against the
// snapshot's pool swap fee and an independently sourced taker fee for the
// hop's denom pair. Silently dropping fees is a higher-severity bug class
// than over-charging, hence the asymmetry.
func ValidateFee(refData mvc.ReferenceData, feeSource mvc.FeeSource, request domain.QuoteRequest, quote domain.QuoteResult) domain.Verdict {
	var verdict domain.Verdict

	if quote.EffectiveFee.IsNegative() {
		verdict.Failf(domain.CheckUnexpectedZeroFee, "effective fee %s is negative", quote.EffectiveFee)
		return verdict
	}

	if quote.EffectiveFee.IsPositive() {
		return verdict
	}

	for _, route := range quote.Routes {
		hops := resolveHops(request.Method, route, request.DenomIn(), request.DenomOut())

		for _, hop := range hops {
			pool, ok := refData.GetPool(hop.PoolID)
			if !ok {
				verdict.Failf(domain.CheckMissingReferenceData, "pool %d not found in reference data", hop.PoolID)
				continue
			}

			if pool.SwapFee.IsPositive() {
				verdict.Failf(domain.CheckUnexpectedZeroFee, "swap fee %s is not charged for pool %d", pool.SwapFee, pool.ID)
			}

			takerFee, err := feeSource.GetTradingPairTakerFee(hop.DenomIn, hop.DenomOut)
			if err != nil {
				verdict.Failf(domain.CheckMissingReferenceData, "taker fee for pair (%s, %s): %s", hop.DenomIn, hop.DenomOut, err)
				continue
			}

			if takerFee.IsPositive() {
				verdict.Failf(domain.CheckUnexpectedZeroFee, "taker fee %s is not charged for pair (%s, %s) in pool %d", takerFee, hop.DenomIn, hop.DenomOut, pool.ID)
			}
		}
	}

	return verdict
}
