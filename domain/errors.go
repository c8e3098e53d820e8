package domain

import (
	"fmt"
)

// MissingReferenceDataError is returned when a denom referenced by a quote
// has no usable reference data in the snapshot.
type MissingReferenceDataError struct {
	Denom  string
	Reason string
}

func (e MissingReferenceDataError) Error() string {
	return fmt.Sprintf("missing reference data for denom (%s): %s", e.Denom, e.Reason)
}

// UnknownPoolTypeError is returned when a raw pool type string cannot be
// classified. This is fatal since downstream logic cannot safely classify
// the pool's liquidity.
type UnknownPoolTypeError struct {
	RawType string
}

func (e UnknownPoolTypeError) Error() string {
	return fmt.Sprintf("unknown pool type (%s)", e.RawType)
}

// PoolNotFoundError is returned when a pool id referenced by a route is not
// present in the reference snapshot.
type PoolNotFoundError struct {
	PoolID uint64
}

func (e PoolNotFoundError) Error() string {
	return fmt.Sprintf("pool with ID (%d) is not found", e.PoolID)
}

// TakerFeeNotFoundForDenomPairError is returned when no independently
// sourced taker fee is available for a denom pair.
type TakerFeeNotFoundForDenomPairError struct {
	Denom0 string
	Denom1 string
}

func (e TakerFeeNotFoundForDenomPairError) Error() string {
	return fmt.Sprintf("taker fee not found for denom pair (%s, %s)", e.Denom0, e.Denom1)
}

// UnexpectedStatusCodeError is returned by clients when an endpoint returns
// a non-2xx status. The body is surfaced verbatim.
type UnexpectedStatusCodeError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e UnexpectedStatusCodeError) Error() string {
	return fmt.Sprintf("unexpected status code (%d) from (%s): %s", e.StatusCode, e.Endpoint, e.Body)
}
