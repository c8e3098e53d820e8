package domain

import (
	"github.com/osmosis-labs/osmosis/osmomath"
)

// DenomMetadata represents the reference metadata for a single chain denom.
type DenomMetadata struct {
	// Denom is the chain denom (e.g. uosmo or an ibc/... hash).
	Denom string `json:"denom"`
	// DisplayName is the human readable name of the token.
	DisplayName string `json:"display"`
	// Exponent is the decimal precision of the token. That is, the number of
	// base units that make up one human-meaningful unit.
	Exponent int `json:"exponent"`
	// PriceUSD is the reference USD price of one human unit of the token.
	// Nil signifies that the token is unpriced.
	PriceUSD *osmomath.BigDec `json:"price,omitempty"`
	// LiquidityUSD is the total USD liquidity of the token across all pools.
	LiquidityUSD osmomath.Dec `json:"liquidity"`
	// Volume24hUSD is the 24h USD trading volume of the token.
	Volume24hUSD osmomath.Dec `json:"volume_24h"`
	// IsUnlisted is true if the token is not listed in the asset registry.
	IsUnlisted bool `json:"preview"`
}

// HasPriceUSD returns true if the token has a positive reference USD price.
func (m DenomMetadata) HasPriceUSD() bool {
	return m.PriceUSD != nil && m.PriceUSD.IsPositive()
}

// Token represents the token metadata returned by the router's
// /tokens/metadata endpoint.
type Token struct {
	// HumanDenom is the human readable denom.
	HumanDenom string `json:"symbol"`
	// Precision is the precision of the token.
	Precision int `json:"decimals"`
	// IsUnlisted is true if the token is unlisted.
	IsUnlisted  bool   `json:"preview"`
	CoingeckoID string `json:"coingeckoId"`
}
