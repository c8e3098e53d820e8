package domain

// Config defines the config for the quote verifier runner.
type Config struct {
	// SQSURL is the base URL of the router under test.
	SQSURL string `mapstructure:"sqs-url"`
	// SQSAPIKey is the optional API key passed to the router.
	SQSAPIKey string `mapstructure:"sqs-api-key"`

	// LCDEndpoint is the chain LCD endpoint used as the independent
	// taker fee source.
	LCDEndpoint string `mapstructure:"lcd-endpoint"`

	// DataAPIURL is the indexer endpoint serving token and pool listings.
	DataAPIURL string `mapstructure:"data-api-url"`

	// SnapshotPath, if set, is where the built reference data snapshot is
	// persisted so that subsequent runs can reuse it.
	SnapshotPath string `mapstructure:"snapshot-path"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	// SentryDSN enables Sentry error reporting when non-empty.
	SentryDSN         string `mapstructure:"sentry-dsn"`
	SentryEnvironment string `mapstructure:"sentry-environment"`

	// Verifier encapsulates the verification sweep config.
	Verifier *VerifierConfig `mapstructure:"verifier"`
}

// VerifierConfig defines the configuration of the verification sweep.
type VerifierConfig struct {
	// NumTopLiquidityDenoms is the number of top by-liquidity denoms to
	// construct quote requests for.
	NumTopLiquidityDenoms int `mapstructure:"num-top-liquidity-denoms"`
	// MinAmountOrder and MaxAmountOrder bound the orders of magnitude of the
	// generated trade amounts, e.g. 6 through 9 generates one amount within
	// each of [10^6, 10^7), ..., [10^9, 10^10).
	MinAmountOrder int `mapstructure:"min-amount-order"`
	MaxAmountOrder int `mapstructure:"max-amount-order"`
	// RandSeed seeds the deterministic amount generation.
	RandSeed int64 `mapstructure:"rand-seed"`
	// MaxWorkers is the number of concurrent verification workers.
	MaxWorkers int `mapstructure:"max-workers"`
}

// DefaultVerifierConfig is the verifier config used when none is provided.
var DefaultVerifierConfig = VerifierConfig{
	NumTopLiquidityDenoms: 20,
	MinAmountOrder:        6,
	MaxAmountOrder:        10,
	RandSeed:              42,
	MaxWorkers:            8,
}

// SQSRouterConfig is the router section of the config returned by the
// router's /config endpoint.
type SQSRouterConfig struct {
	MaxRoutes        int `json:"MaxRoutes"`
	MaxPoolsPerRoute int `json:"MaxPoolsPerRoute"`
}

// SQSConfig is the config returned by the router's /config endpoint.
type SQSConfig struct {
	Router SQSRouterConfig `json:"Router"`
}
