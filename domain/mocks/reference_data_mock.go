package mocks

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/sqs-verifier/domain"
	"github.com/osmosis-labs/sqs-verifier/domain/mvc"
)

// ReferenceDataMock implements mvc.ReferenceData for tests. Zero-value maps
// answer every lookup with a miss.
type ReferenceDataMock struct {
	Denoms map[string]domain.DenomMetadata
	Pools  map[uint64]domain.Pool
}

var _ mvc.ReferenceData = &ReferenceDataMock{}

// GetDenomMetadata implements mvc.ReferenceData.
func (m *ReferenceDataMock) GetDenomMetadata(denom string) (domain.DenomMetadata, bool) {
	metadata, ok := m.Denoms[denom]
	return metadata, ok
}

// GetPool implements mvc.ReferenceData.
func (m *ReferenceDataMock) GetPool(poolID uint64) (domain.Pool, bool) {
	pool, ok := m.Pools[poolID]
	return pool, ok
}

// FeeSourceMock implements mvc.FeeSource for tests.
type FeeSourceMock struct {
	GetTradingPairTakerFeeFunc func(denom0, denom1 string) (osmomath.Dec, error)
}

var _ mvc.FeeSource = &FeeSourceMock{}

// GetTradingPairTakerFee implements mvc.FeeSource.
func (m *FeeSourceMock) GetTradingPairTakerFee(denom0, denom1 string) (osmomath.Dec, error) {
	if m.GetTradingPairTakerFeeFunc != nil {
		return m.GetTradingPairTakerFeeFunc(denom0, denom1)
	}
	return osmomath.ZeroDec(), nil
}
