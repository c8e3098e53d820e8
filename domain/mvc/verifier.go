package mvc

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/sqs-verifier/domain"
)

// ReferenceData is the read-only view of the reference data snapshot
// consumed by the verifier. Implementations must be safe for concurrent
// reads and must not block on I/O.
type ReferenceData interface {
	// GetDenomMetadata returns the reference metadata for the given denom.
	GetDenomMetadata(denom string) (domain.DenomMetadata, bool)
	// GetPool returns the reference snapshot of the pool with the given id.
	GetPool(poolID uint64) (domain.Pool, bool)
}

// FeeSource returns an independently sourced fee for a denom pair.
// It is independent of the router under test. It is consulted only for
// quotes claiming a zero fee; implementations should cache per pair since
// the same pairs recur across a sweep.
type FeeSource interface {
	// GetTradingPairTakerFee returns the taker fee for the given denom pair.
	// The pair is order insensitive.
	GetTradingPairTakerFee(denom0, denom1 string) (osmomath.Dec, error)
}

// QuoteVerifier verifies router quotes against reference data.
type QuoteVerifier interface {
	// Verify checks the given quote against the original request parameters.
	// It always returns a verdict and never blocks.
	Verify(request domain.QuoteRequest, quote domain.QuoteResult) domain.Verdict

	// VerifyCandidateRoutes checks the structural invariants of the
	// candidate routes returned for the given denom pair. The route count
	// must be within [expectedMinRoutes, expectedMaxRoutes].
	VerifyCandidateRoutes(denomIn, denomOut string, routes domain.CandidateRoutes, expectedMinRoutes, expectedMaxRoutes int) domain.Verdict
}
