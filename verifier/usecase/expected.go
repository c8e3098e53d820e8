package usecase

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/sqs-verifier/domain"
	"github.com/osmosis-labs/sqs-verifier/domain/mvc"
)

// ExpectedValue is the independently computed expectation for a quote,
// derived from reference USD prices and token precisions.
type ExpectedValue struct {
	// UnitPrice is the expected price of one human unit of the specified
	// token denominated in human units of the counter token.
	UnitPrice osmomath.BigDec
	// CounterAmount is the expected counter amount at the specified token's
	// precision scale. Compare against the reported raw counter amount
	// multiplied by ScalingFactor.
	CounterAmount osmomath.BigDec
	// ScalingFactor is 10^(specified exponent) / 10^(counter exponent).
	// The router reports spot prices and amounts in raw integer units;
	// multiplying the reported values by this factor makes them comparable
	// to the expectations above. Rescaling the router's values rather than
	// the reference prices avoids precision loss from repeated division.
	ScalingFactor osmomath.BigDec
	// NotionalUSD is the USD value of the specified amount. Used only for
	// the price impact threshold check, not for tolerance banding.
	NotionalUSD osmomath.BigDec
}

// ComputeExpectedValue computes the expected unit price, counter amount and
// USD notional for the given request from reference data.
// Returns MissingReferenceDataError if either denom is absent or unpriced.
func ComputeExpectedValue(refData mvc.ReferenceData, request domain.QuoteRequest) (ExpectedValue, error) {
	specified, err := pricedDenomMetadata(refData, request.Specified.Denom)
	if err != nil {
		return ExpectedValue{}, err
	}

	counter, err := pricedDenomMetadata(refData, request.CounterDenom)
	if err != nil {
		return ExpectedValue{}, err
	}

	specifiedScale := powTen(specified.Exponent)

	unitPrice := specified.PriceUSD.Quo(*counter.PriceUSD)
	amount := osmomath.BigDecFromSDKInt(request.Specified.Amount)

	return ExpectedValue{
		UnitPrice:     unitPrice,
		CounterAmount: amount.Mul(unitPrice),
		ScalingFactor: specifiedScale.Quo(powTen(counter.Exponent)),
		NotionalUSD:   amount.Mul(*specified.PriceUSD).Quo(specifiedScale),
	}, nil
}

func pricedDenomMetadata(refData mvc.ReferenceData, denom string) (domain.DenomMetadata, error) {
	metadata, ok := refData.GetDenomMetadata(denom)
	if !ok {
		return domain.DenomMetadata{}, domain.MissingReferenceDataError{Denom: denom, Reason: "denom not in snapshot"}
	}

	if !metadata.HasPriceUSD() {
		return domain.DenomMetadata{}, domain.MissingReferenceDataError{Denom: denom, Reason: "no reference USD price"}
	}

	return metadata, nil
}

func powTen(exponent int) osmomath.BigDec {
	return osmomath.NewBigDec(10).PowerInteger(uint64(exponent))
}
