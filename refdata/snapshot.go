package refdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/osmosis-labs/sqs-verifier/domain"
	"github.com/osmosis-labs/sqs-verifier/log"
)

// snapshot is the serialized form of the store. One process builds it and
// persists it; any number of follow-up processes load it read-only.
// This replaces sharing the setup computation through a lock file.
type snapshot struct {
	Denoms map[string]domain.DenomMetadata `json:"denoms"`
	Pools  []domain.Pool                   `json:"pools"`
}

// Save serializes the store to the given path. The write goes through a
// temporary file and a rename so that concurrent readers never observe a
// partially written snapshot.
func (s *Store) Save(path string) error {
	pools := make([]domain.Pool, 0, len(s.pools))
	for _, pool := range s.pools {
		pools = append(pools, pool)
	}
	sort.Slice(pools, func(i, j int) bool {
		return pools[i].ID < pools[j].ID
	})

	bz, err := json.Marshal(snapshot{
		Denoms: s.denoms,
		Pools:  pools,
	})
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmpPath, bz, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// LoadSnapshot reads a previously persisted snapshot and rebuilds the
// store, including its derived indexes.
func LoadSnapshot(path string, logger log.Logger) (*Store, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snap snapshot
	if err := json.Unmarshal(bz, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	store := &Store{
		denoms:                  snap.Denoms,
		pools:                   make(map[uint64]domain.Pool, len(snap.Pools)),
		poolsByType:             make(map[domain.PoolType][]uint64),
		topLiquidityPoolByDenom: make(map[string]uint64),
	}
	if store.denoms == nil {
		store.denoms = make(map[string]domain.DenomMetadata)
	}

	for _, pool := range snap.Pools {
		store.addPool(pool)
	}

	logger.Info("loaded reference data snapshot",
		zap.String("path", path),
		zap.Int("num_denoms", len(store.denoms)),
		zap.Int("num_pools", len(store.pools)),
	)

	return store, nil
}
