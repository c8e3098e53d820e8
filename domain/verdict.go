package domain

import "fmt"

// Check identifies a single verification check that can fail.
type Check string

const (
	// CheckMissingReferenceData fires when a denom or pool referenced by the
	// quote has no reference data in the snapshot. Failed precondition, never
	// silently skipped.
	CheckMissingReferenceData Check = "missing_reference_data"
	// CheckUnknownPoolType fires when the pool type cannot be classified.
	CheckUnknownPoolType Check = "unknown_pool_type"
	// CheckRouteStructure fires on a denom mismatch at a hop boundary or a
	// hop denom missing from its pool's token set.
	CheckRouteStructure Check = "route_structure_violation"
	// CheckToleranceExceeded fires when the reported spot price or counter
	// amount deviates from the expected value beyond tolerance.
	CheckToleranceExceeded Check = "tolerance_exceeded"
	// CheckUnexpectedZeroFee fires when a quote claims a zero effective fee
	// but some hop's independently sourced fee is nonzero.
	CheckUnexpectedZeroFee Check = "unexpected_zero_fee"
	// CheckPriceImpactSign fires when the price impact sign invariant is
	// broken: zero iff zero-slippage route, strictly negative otherwise.
	CheckPriceImpactSign Check = "price_impact_sign_violation"
	// CheckPriceImpactThreshold fires when a small-notional trade reports a
	// price impact magnitude above the high-liquidity threshold.
	CheckPriceImpactThreshold Check = "price_impact_threshold_exceeded"
	// CheckRouteCount fires when the number of candidate routes is outside
	// the expected bounds.
	CheckRouteCount Check = "route_count_out_of_bounds"
	// CheckExpectedPoolMissing fires when a pool expected to serve a denom
	// pair does not appear among the candidate routes for that pair.
	CheckExpectedPoolMissing Check = "expected_pool_missing"
)

// CheckFailure is a single violated check with a human readable message.
type CheckFailure struct {
	Check   Check  `json:"check"`
	Message string `json:"message"`
}

// Verdict is the aggregated result of a verification call.
// The zero value is a passing verdict.
type Verdict struct {
	Failures []CheckFailure `json:"failures,omitempty"`
}

// Pass returns true if no check failed.
func (v Verdict) Pass() bool {
	return len(v.Failures) == 0
}

// Failf records a failed check with a formatted message.
func (v *Verdict) Failf(check Check, format string, args ...any) {
	v.Failures = append(v.Failures, CheckFailure{
		Check:   check,
		Message: fmt.Sprintf(format, args...),
	})
}

// Merge appends the failures of other to v.
func (v *Verdict) Merge(other Verdict) {
	v.Failures = append(v.Failures, other.Failures...)
}

// String implements fmt.Stringer.
func (v Verdict) String() string {
	if v.Pass() {
		return "pass"
	}

	out := "fail:"
	for _, failure := range v.Failures {
		out += fmt.Sprintf(" [%s] %s;", failure.Check, failure.Message)
	}
	return out
}
