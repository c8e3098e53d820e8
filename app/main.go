package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/osmosis-labs/sqs-verifier/client"
	"github.com/osmosis-labs/sqs-verifier/domain"
	sqslog "github.com/osmosis-labs/sqs-verifier/log"
	"github.com/osmosis-labs/sqs-verifier/refdata"
	"github.com/osmosis-labs/sqs-verifier/verifier/usecase"
)

func main() {
	configPath := flag.String("config", "config.json", "config file location")

	hostName := flag.String("host", "sqs-verifier", "the name of the host")

	fromSnapshot := flag.Bool("from-snapshot", false, "load reference data from the configured snapshot instead of the data API")

	// Parse the command-line arguments
	flag.Parse()

	fmt.Println("configPath", *configPath)
	fmt.Println("hostName", *hostName)

	viper.SetConfigFile(*configPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	// Unmarshal the config into your Config struct
	var config domain.Config
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println("Error unmarshalling config:", err)
		return
	}

	if config.Verifier == nil {
		defaultVerifierConfig := domain.DefaultVerifierConfig
		config.Verifier = &defaultVerifierConfig
	}

	logger, err := sqslog.NewLogger(config.LoggerIsProduction, config.LoggerFilename, config.LoggerLevel)
	if err != nil {
		log.Fatalf("error while creating logger: %s", err)
	}
	logger.Info("Starting quote verifier")

	if config.SentryDSN != "" {
		err = sentry.Init(sentry.ClientOptions{
			ServerName:  *hostName,
			Dsn:         config.SentryDSN,
			Environment: config.SentryEnvironment,
		})
		if err != nil {
			log.Fatalf("sentry.Init: %s", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Handle SIGINT and SIGTERM signals to cancel the in-flight sweep.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sqsClient := client.NewSQSClient(config.SQSURL, config.SQSAPIKey)

	sqsConfig, err := sqsClient.GetConfig(ctx)
	if err != nil {
		logger.Error("failed to read router config", zap.Error(err))
		os.Exit(1)
	}

	store, err := buildReferenceData(ctx, config, *fromSnapshot, sqsClient, logger)
	if err != nil {
		logger.Error("failed to build reference data", zap.Error(err))
		os.Exit(1)
	}

	feeSource := client.NewLCDClient(config.LCDEndpoint)

	quoteVerifier := usecase.NewVerifierUsecase(store, feeSource, logger)

	sweep := newSweep(sqsClient, quoteVerifier, store, sqsConfig, *config.Verifier, logger)

	numFailed := sweep.Run(ctx)
	if numFailed > 0 {
		logger.Error("verification sweep failed", zap.Int("num_failed", numFailed))
		if err := logger.Sync(); err != nil {
			log.Println("failed to sync logger:", err)
		}
		os.Exit(1)
	}

	logger.Info("verification sweep passed")
	if err := logger.Sync(); err != nil {
		log.Println("failed to sync logger:", err)
	}
}

// buildReferenceData builds the reference data store either from the data API
// or from a previously persisted snapshot. The router's token metadata is
// fetched alongside to flag unlisted denoms. A freshly built store is
// persisted when a snapshot path is configured.
func buildReferenceData(ctx context.Context, config domain.Config, fromSnapshot bool, sqsClient *client.SQSClient, logger sqslog.Logger) (*refdata.Store, error) {
	if fromSnapshot {
		if config.SnapshotPath == "" {
			return nil, fmt.Errorf("snapshot-path must be configured to load from snapshot")
		}
		return refdata.LoadSnapshot(config.SnapshotPath, logger)
	}

	dataClient := client.NewDataClient(config.DataAPIURL)

	tokens, err := dataClient.FetchTokens(ctx)
	if err != nil {
		return nil, err
	}

	pools, err := dataClient.FetchPools(ctx)
	if err != nil {
		return nil, err
	}

	routerTokens, err := sqsClient.GetTokensMetadata(ctx)
	if err != nil {
		return nil, err
	}

	store, err := refdata.NewStore(tokens, pools, routerTokens, logger)
	if err != nil {
		return nil, err
	}

	if config.SnapshotPath != "" {
		if err := store.Save(config.SnapshotPath); err != nil {
			logger.Warn("failed to persist reference data snapshot", zap.Error(err))
		}
	}

	return store, nil
}
