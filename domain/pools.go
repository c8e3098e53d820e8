package domain

import (
	"github.com/osmosis-labs/osmosis/osmomath"
)

// PoolType is the canonical pool type tag used across the verifier.
// It collapses the raw chain pool module types and the CosmWasm code id
// sub-types into a single enum.
type PoolType int

const (
	PoolTypeBalancer PoolType = iota
	PoolTypeStableswap
	PoolTypeConcentrated
	PoolTypeCosmWasmMisc
	PoolTypeCosmWasmTransmuterV1
	PoolTypeCosmWasmAstroportPCL
	PoolTypeCosmWasmOrderbook
)

// String implements fmt.Stringer.
func (t PoolType) String() string {
	switch t {
	case PoolTypeBalancer:
		return "balancer"
	case PoolTypeStableswap:
		return "stableswap"
	case PoolTypeConcentrated:
		return "concentrated"
	case PoolTypeCosmWasmMisc:
		return "cosmwasm-misc"
	case PoolTypeCosmWasmTransmuterV1:
		return "cosmwasm-transmuter-v1"
	case PoolTypeCosmWasmAstroportPCL:
		return "cosmwasm-astroport-pcl"
	case PoolTypeCosmWasmOrderbook:
		return "cosmwasm-orderbook"
	default:
		return "unknown"
	}
}

// IsZeroSlippage returns true if the pool type quotes a fixed exchange
// rate regardless of trade size.
func (t PoolType) IsZeroSlippage() bool {
	return t == PoolTypeCosmWasmTransmuterV1
}

// Pool represents the reference snapshot data of a single pool.
type Pool struct {
	// ID is the on-chain pool id.
	ID uint64 `json:"pool_id"`
	// Type is the canonical pool type.
	Type PoolType `json:"type"`
	// Denoms is the set of denoms in the pool. Membership is order
	// insensitive but the order is kept for display.
	Denoms []string `json:"denoms"`
	// LiquidityCapUSD is the total USD liquidity capitalization of the pool.
	LiquidityCapUSD osmomath.Dec `json:"liquidity"`
	// SwapFee is the fee the pool charges on a swap. 0 <= fee < 1.
	SwapFee osmomath.Dec `json:"swap_fee"`
	// TakerFee is the protocol taker fee for the pool's pairs. 0 <= fee < 1.
	TakerFee osmomath.Dec `json:"taker_fee"`
}

// HasDenom returns true if the given denom is in the pool's token set.
func (p Pool) HasDenom(denom string) bool {
	for _, poolDenom := range p.Denoms {
		if poolDenom == denom {
			return true
		}
	}
	return false
}
