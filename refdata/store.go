package refdata

import (
	"encoding/json"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/sqs-verifier/domain"
	"github.com/osmosis-labs/sqs-verifier/domain/mvc"
	"github.com/osmosis-labs/sqs-verifier/log"
)

// TokenRow is a single token listing row as served by the data API.
type TokenRow struct {
	Denom     string   `json:"denom"`
	Display   string   `json:"display"`
	Exponent  int      `json:"exponent"`
	Price     *float64 `json:"price"`
	Liquidity float64  `json:"liquidity"`
	Volume24h float64  `json:"volume_24h"`
}

// PoolRow is a single pool listing row as served by the data API.
// PoolTokens is either a list of {denom} objects or, for concentrated
// pools, an object with asset0/asset1 keys.
type PoolRow struct {
	PoolID     uint64          `json:"pool_id"`
	Type       string          `json:"type"`
	CodeID     json.Number     `json:"code_id,omitempty"`
	PoolTokens json.RawMessage `json:"pool_tokens"`
	Liquidity  float64         `json:"liquidity"`
	SwapFees   float64         `json:"swap_fees"`
	TakerFee   float64         `json:"taker_fee"`
}

// Store is an immutable point-in-time snapshot of the reference data the
// verifier compares router quotes against. It is built once per run and is
// read-only thereafter, making concurrent reads safe without locking.
type Store struct {
	denoms      map[string]domain.DenomMetadata
	pools       map[uint64]domain.Pool
	poolsByType map[domain.PoolType][]uint64

	// topLiquidityPoolByDenom maps each denom to its highest-liquidity pool.
	topLiquidityPoolByDenom map[string]uint64
}

var _ mvc.ReferenceData = &Store{}

// NewStore builds a reference data store from raw token and pool listings.
// The router's own token metadata supplies the listing flag: denoms marked
// preview there, or absent from it entirely, are recorded as unlisted and
// excluded from sweep parameterization.
// Returns an error if any pool's raw type cannot be classified since
// downstream logic cannot safely treat unclassified liquidity.
func NewStore(tokens []TokenRow, pools []PoolRow, routerTokens map[string]domain.Token, logger log.Logger) (*Store, error) {
	store := &Store{
		denoms:                  make(map[string]domain.DenomMetadata, len(tokens)),
		pools:                   make(map[uint64]domain.Pool, len(pools)),
		poolsByType:             make(map[domain.PoolType][]uint64),
		topLiquidityPoolByDenom: make(map[string]uint64),
	}

	for _, token := range tokens {
		routerToken, inRouterMetadata := routerTokens[token.Denom]

		metadata := domain.DenomMetadata{
			Denom:        token.Denom,
			DisplayName:  token.Display,
			Exponent:     token.Exponent,
			LiquidityUSD: decFromFloat(token.Liquidity),
			Volume24hUSD: decFromFloat(token.Volume24h),
			IsUnlisted:   !inRouterMetadata || routerToken.IsUnlisted,
		}

		if token.Price != nil && *token.Price > 0 {
			price := bigDecFromFloat(*token.Price)
			metadata.PriceUSD = &price
		}

		store.denoms[token.Denom] = metadata
	}

	for _, row := range pools {
		codeID, err := row.CodeID.Int64()
		if err != nil {
			// Non-CosmWasm pools have no code id.
			codeID = 0
		}

		poolType, err := ClassifyPool(row.Type, uint64(codeID))
		if err != nil {
			return nil, err
		}

		denoms, err := extractPoolDenoms(row.PoolTokens)
		if err != nil {
			logger.Warn("failed to extract pool denoms", zap.Uint64("pool_id", row.PoolID), zap.Error(err))
			continue
		}

		pool := domain.Pool{
			ID:              row.PoolID,
			Type:            poolType,
			Denoms:          denoms,
			LiquidityCapUSD: decFromFloat(row.Liquidity),
			SwapFee:         decFromFloat(row.SwapFees),
			TakerFee:        decFromFloat(row.TakerFee),
		}

		store.addPool(pool)
	}

	logger.Info("built reference data store",
		zap.Int("num_denoms", len(store.denoms)),
		zap.Int("num_pools", len(store.pools)),
	)

	return store, nil
}

func (s *Store) addPool(pool domain.Pool) {
	s.pools[pool.ID] = pool
	s.poolsByType[pool.Type] = append(s.poolsByType[pool.Type], pool.ID)

	for _, denom := range pool.Denoms {
		topPoolID, ok := s.topLiquidityPoolByDenom[denom]
		if !ok || s.pools[topPoolID].LiquidityCapUSD.LT(pool.LiquidityCapUSD) {
			s.topLiquidityPoolByDenom[denom] = pool.ID
		}
	}
}

// GetDenomMetadata implements mvc.ReferenceData.
func (s *Store) GetDenomMetadata(denom string) (domain.DenomMetadata, bool) {
	metadata, ok := s.denoms[denom]
	return metadata, ok
}

// GetPool implements mvc.ReferenceData.
func (s *Store) GetPool(poolID uint64) (domain.Pool, bool) {
	pool, ok := s.pools[poolID]
	return pool, ok
}

// PoolsOfType returns the pools of the given type sorted by
// liquidity cap descending.
func (s *Store) PoolsOfType(poolType domain.PoolType) []domain.Pool {
	poolIDs := s.poolsByType[poolType]

	pools := make([]domain.Pool, 0, len(poolIDs))
	for _, poolID := range poolIDs {
		pools = append(pools, s.pools[poolID])
	}

	sort.Slice(pools, func(i, j int) bool {
		return pools[i].LiquidityCapUSD.GT(pools[j].LiquidityCapUSD)
	})

	return pools
}

// TopLiquidityDenoms returns up to n priced, listed denoms sorted by total
// USD liquidity descending. Denoms without a pool holding liquidity are
// skipped since no route can be found for them.
func (s *Store) TopLiquidityDenoms(n int) []string {
	candidates := make([]domain.DenomMetadata, 0, len(s.denoms))
	for denom, metadata := range s.denoms {
		if metadata.IsUnlisted || !metadata.HasPriceUSD() {
			continue
		}

		if _, ok := s.topLiquidityPoolByDenom[denom]; !ok {
			continue
		}

		candidates = append(candidates, metadata)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].LiquidityUSD.GT(candidates[j].LiquidityUSD)
	})

	if n > len(candidates) {
		n = len(candidates)
	}

	denoms := make([]string, 0, n)
	for _, metadata := range candidates[:n] {
		denoms = append(denoms, metadata.Denom)
	}

	return denoms
}

// NumDenoms returns the number of denoms in the snapshot.
func (s *Store) NumDenoms() int {
	return len(s.denoms)
}

// NumPools returns the number of pools in the snapshot.
func (s *Store) NumPools() int {
	return len(s.pools)
}

// extractPoolDenoms extracts the denom set from the raw pool_tokens field,
// handling both the object (asset0/asset1) and the list formats.
func extractPoolDenoms(raw json.RawMessage) ([]string, error) {
	type asset struct {
		Denom string `json:"denom"`
	}

	var assets []asset
	if err := json.Unmarshal(raw, &assets); err == nil {
		denoms := make([]string, 0, len(assets))
		for _, a := range assets {
			if a.Denom != "" {
				denoms = append(denoms, a.Denom)
			}
		}
		return denoms, nil
	}

	// Concentrated pool format.
	var pair struct {
		Asset0 asset `json:"asset0"`
		Asset1 asset `json:"asset1"`
	}
	if err := json.Unmarshal(raw, &pair); err != nil {
		return nil, err
	}

	denoms := make([]string, 0, 2)
	if pair.Asset0.Denom != "" {
		denoms = append(denoms, pair.Asset0.Denom)
	}
	if pair.Asset1.Denom != "" {
		denoms = append(denoms, pair.Asset1.Denom)
	}

	return denoms, nil
}

// decFromFloat converts a float from the data API to osmomath.Dec.
func decFromFloat(value float64) osmomath.Dec {
	return osmomath.MustNewDecFromStr(strconv.FormatFloat(value, 'f', osmomath.DecPrecision, 64))
}

// bigDecFromFloat converts a float from the data API to osmomath.BigDec
// without precision loss beyond the float's own.
func bigDecFromFloat(value float64) osmomath.BigDec {
	return osmomath.MustNewBigDecFromStr(strconv.FormatFloat(value, 'f', osmomath.BigDecPrecision, 64))
}
