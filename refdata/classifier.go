package refdata

import (
	"github.com/osmosis-labs/sqs-verifier/domain"
)

// Raw pool module type strings as served by the chain indexer.
const (
	rawPoolTypeBalancer     = "osmosis.gamm.v1beta1.Pool"
	rawPoolTypeStableswap   = "osmosis.gamm.poolmodels.stableswap.v1beta1.Pool"
	rawPoolTypeConcentrated = "osmosis.concentratedliquidity.v1beta1.Pool"
	rawPoolTypeCosmWasm     = "osmosis.cosmwasmpool.v1beta1.CosmWasmPool"
)

// CosmWasm pool contract code ids with a dedicated classification.
// Any other code id classifies as PoolTypeCosmWasmMisc.
const (
	TransmuterV1CodeID uint64 = 148
	AstroportPCLCodeID uint64 = 773
	OrderbookCodeID    uint64 = 885
)

var rawPoolTypeMap = map[string]domain.PoolType{
	rawPoolTypeBalancer:     domain.PoolTypeBalancer,
	rawPoolTypeStableswap:   domain.PoolTypeStableswap,
	rawPoolTypeConcentrated: domain.PoolTypeConcentrated,
}

// ClassifyPool maps a raw pool module type string and, for CosmWasm pools,
// the contract code id, to the canonical pool type.
// Returns UnknownPoolTypeError for an unrecognized raw type string.
func ClassifyPool(rawType string, codeID uint64) (domain.PoolType, error) {
	if poolType, ok := rawPoolTypeMap[rawType]; ok {
		return poolType, nil
	}

	if rawType == rawPoolTypeCosmWasm {
		switch codeID {
		case TransmuterV1CodeID:
			return domain.PoolTypeCosmWasmTransmuterV1, nil
		case AstroportPCLCodeID:
			return domain.PoolTypeCosmWasmAstroportPCL, nil
		case OrderbookCodeID:
			return domain.PoolTypeCosmWasmOrderbook, nil
		default:
			return domain.PoolTypeCosmWasmMisc, nil
		}
	}

	return 0, domain.UnknownPoolTypeError{RawType: rawType}
}
